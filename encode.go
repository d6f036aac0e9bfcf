package argon2

import (
	"encoding/base64"
	"regexp"
	"strconv"
)

// encodedFormat matches the canonical Argon2 encoded hash string:
// $<type>$v=<version>$m=<memoryKiB>,t=<iterations>,p=<parallelism>$<salt>$<hash>
//
// The type name is matched loosely (argon2 plus any lowercase/digit suffix)
// rather than restricted to the three known variants, so that a well-formed
// but unrecognized name (e.g. "argon2x") reaches parseType and is reported
// as UnsupportedTypeError rather than being indistinguishable from a
// malformed string.
var encodedFormat = regexp.MustCompile(
	`^\$(argon2[a-z0-9]+)\$v=(\d+)\$m=(\d+),t=(\d+),p=(\d+)\$([A-Za-z0-9+/]+)\$([A-Za-z0-9+/]+)$`,
)

const encodedVersion = 19

// encode renders params, salt, and tag as the canonical encoded string.
// Base64 uses the standard alphabet with padding stripped.
func encode(params Params, salt, tag []byte) string {
	return "$" + params.Type.String() +
		"$v=" + strconv.Itoa(encodedVersion) +
		"$m=" + strconv.Itoa(int(params.MemoryKiB)) +
		",t=" + strconv.Itoa(int(params.Iterations)) +
		",p=" + strconv.Itoa(int(params.Parallelism)) +
		"$" + base64.RawStdEncoding.EncodeToString(salt) +
		"$" + base64.RawStdEncoding.EncodeToString(tag)
}

// decode parses an encoded hash string, rejecting unknown type names,
// any version other than 19, and any deviation from the grammar.
func decode(s string) (Params, []byte, []byte, error) {
	m := encodedFormat.FindStringSubmatch(s)
	if m == nil {
		return Params{}, nil, nil, &InvalidEncodingError{Input: s, Reason: "does not match the argon2 hash grammar"}
	}

	typ, ok := parseType(m[1])
	if !ok {
		return Params{}, nil, nil, &UnsupportedTypeError{Name: m[1]}
	}

	version, err := strconv.Atoi(m[2])
	if err != nil {
		return Params{}, nil, nil, &InvalidEncodingError{Input: s, Reason: "malformed version"}
	}
	if version != encodedVersion {
		return Params{}, nil, nil, &UnsupportedVersionError{Version: version}
	}

	memoryKiB, err := strconv.Atoi(m[3])
	if err != nil {
		return Params{}, nil, nil, &InvalidEncodingError{Input: s, Reason: "malformed memory cost"}
	}
	iterations, err := strconv.Atoi(m[4])
	if err != nil {
		return Params{}, nil, nil, &InvalidEncodingError{Input: s, Reason: "malformed iteration count"}
	}
	parallelism, err := strconv.Atoi(m[5])
	if err != nil {
		return Params{}, nil, nil, &InvalidEncodingError{Input: s, Reason: "malformed parallelism"}
	}

	salt, err := base64.RawStdEncoding.DecodeString(m[6])
	if err != nil {
		return Params{}, nil, nil, &InvalidEncodingError{Input: s, Reason: "malformed salt encoding"}
	}
	tag, err := base64.RawStdEncoding.DecodeString(m[7])
	if err != nil {
		return Params{}, nil, nil, &InvalidEncodingError{Input: s, Reason: "malformed hash encoding"}
	}

	params := Params{
		Type:        typ,
		Iterations:  uint32(iterations),
		MemoryKiB:   uint32(memoryKiB),
		Parallelism: uint32(parallelism),
		HashLength:  uint32(len(tag)),
	}

	return params, salt, tag, nil
}
