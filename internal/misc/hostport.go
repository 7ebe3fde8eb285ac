package misc

import (
	"net"
	"strconv"

	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

// SplitHostPort splits a string in "<host>:<port>" format, except that if a
// port is not present in the string and defaultPort is non-empty, then
// defaultPort is used instead.
func SplitHostPort(str, defaultPort string) (host string, port string, err error) {
	if str == "" {
		return "", "", mimeutil.HostPortError{HostPort: str, Err: mimeutil.ErrExpectNonEmpty}
	}

	host, port, err = net.SplitHostPort(str)
	if err != nil && defaultPort != "" {
		h, p, err2 := net.SplitHostPort(str + ":" + defaultPort)
		if err2 == nil {
			host, port, err = h, p, nil
		}
	}
	if err != nil {
		return "", "", mimeutil.HostPortError{HostPort: str, Err: err}
	}
	if host == "" {
		return "", "", mimeutil.HostPortError{HostPort: str, Err: mimeutil.ErrExpectNonEmpty}
	}
	if _, err := ParsePort(port); err != nil {
		return "", "", mimeutil.HostPortError{HostPort: str, Err: err}
	}
	return host, port, nil
}

// ParsePort parses a numeric port number.
func ParsePort(port string) (uint16, error) {
	u64, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return 0, mimeutil.PortError{Port: port, Err: err}
	}
	return uint16(u64), nil
}
