package escape

import "fmt"

// EncodeUTF8 fills a 1-6 byte buffer for code points up to 0x7FFFFFFF,
// matching the historical implementation's wider-than-Unicode encoder
// contract (it predates the 0x10FFFF ceiling RFC 3629 later imposed).
// Values above 0x7FFFFFFF are refused.
func EncodeUTF8(r rune) ([]byte, error) {
	u := int64(r)
	if u < 0 {
		return nil, fmt.Errorf("escape: negative code point %d", u)
	}
	switch {
	case u <= 0x7F:
		return []byte{byte(u)}, nil
	case u <= 0x7FF:
		return []byte{
			byte(0xC0 | (u >> 6)),
			byte(0x80 | (u & 0x3F)),
		}, nil
	case u <= 0xFFFF:
		return []byte{
			byte(0xE0 | (u >> 12)),
			byte(0x80 | ((u >> 6) & 0x3F)),
			byte(0x80 | (u & 0x3F)),
		}, nil
	case u <= 0x1FFFFF:
		return []byte{
			byte(0xF0 | (u >> 18)),
			byte(0x80 | ((u >> 12) & 0x3F)),
			byte(0x80 | ((u >> 6) & 0x3F)),
			byte(0x80 | (u & 0x3F)),
		}, nil
	case u <= 0x3FFFFFF:
		return []byte{
			byte(0xF8 | (u >> 24)),
			byte(0x80 | ((u >> 18) & 0x3F)),
			byte(0x80 | ((u >> 12) & 0x3F)),
			byte(0x80 | ((u >> 6) & 0x3F)),
			byte(0x80 | (u & 0x3F)),
		}, nil
	case u <= 0x7FFFFFFF:
		return []byte{
			byte(0xFC | (u >> 30)),
			byte(0x80 | ((u >> 24) & 0x3F)),
			byte(0x80 | ((u >> 18) & 0x3F)),
			byte(0x80 | ((u >> 12) & 0x3F)),
			byte(0x80 | ((u >> 6) & 0x3F)),
			byte(0x80 | (u & 0x3F)),
		}, nil
	default:
		return nil, fmt.Errorf("escape: code point %#x exceeds maximum 0x7FFFFFFF", u)
	}
}

// DecodeUTF8 reads one code point from the front of buf using the same
// wider-than-standard 1-6 byte scheme EncodeUTF8 writes. It returns the
// code point and the number of bytes consumed, or an error if buf does not
// begin with a well-formed sequence.
func DecodeUTF8(buf []byte) (rune, int, error) {
	if len(buf) == 0 {
		return 0, 0, fmt.Errorf("escape: empty buffer")
	}
	b0 := buf[0]
	var n int
	var u int64
	switch {
	case b0&0x80 == 0x00:
		return rune(b0), 1, nil
	case b0&0xE0 == 0xC0:
		n, u = 2, int64(b0&0x1F)
	case b0&0xF0 == 0xE0:
		n, u = 3, int64(b0&0x0F)
	case b0&0xF8 == 0xF0:
		n, u = 4, int64(b0&0x07)
	case b0&0xFC == 0xF8:
		n, u = 5, int64(b0&0x03)
	case b0&0xFE == 0xFC:
		n, u = 6, int64(b0&0x01)
	default:
		return 0, 0, fmt.Errorf("escape: invalid UTF-8 lead byte %#x", b0)
	}
	if len(buf) < n {
		return 0, 0, fmt.Errorf("escape: truncated UTF-8 sequence")
	}
	for i := 1; i < n; i++ {
		if buf[i]&0xC0 != 0x80 {
			return 0, 0, fmt.Errorf("escape: invalid UTF-8 continuation byte at %d", i)
		}
		u = (u << 6) | int64(buf[i]&0x3F)
	}
	return rune(u), n, nil
}
