package argon2

import "testing"

func TestEncodeDecode_RoundTrip(t *testing.T) {
	params := Params{Type: TypeID, Iterations: 3, MemoryKiB: 65536, Parallelism: 4, HashLength: 32}
	salt := []byte("saltsaltsalt")
	tag := []byte("0123456789012345678901234567890123")[:32]

	encoded := encode(params, salt, tag)

	gotParams, gotSalt, gotTag, err := decode(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if gotParams.Type != params.Type || gotParams.Iterations != params.Iterations ||
		gotParams.MemoryKiB != params.MemoryKiB || gotParams.Parallelism != params.Parallelism {
		t.Errorf("params round-trip mismatch: got %+v, want %+v", gotParams, params)
	}
	if string(gotSalt) != string(salt) {
		t.Errorf("salt round-trip mismatch: got %q, want %q", gotSalt, salt)
	}
	if string(gotTag) != string(tag) {
		t.Errorf("tag round-trip mismatch: got %q, want %q", gotTag, tag)
	}
}

func TestDecode_RejectsMalformedStrings(t *testing.T) {
	cases := []string{
		"",
		"not an encoded hash at all",
		"$argon2x$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA",
		"$argon2i$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA=",
	}
	for _, c := range cases {
		if _, _, _, err := decode(c); err == nil {
			t.Errorf("decode(%q): expected error", c)
		}
	}
}

func TestDecode_RejectsUnsupportedType(t *testing.T) {
	s := "$argon2x$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"
	_, _, _, err := decode(s)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Errorf("got error of type %T, want *UnsupportedTypeError", err)
	}
}

func TestDecode_RejectsUnsupportedVersion(t *testing.T) {
	s := "$argon2id$v=16$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"
	_, _, _, err := decode(s)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*UnsupportedVersionError); !ok {
		t.Errorf("got error of type %T, want *UnsupportedVersionError", err)
	}
}
