// Package normalize puts relay hints given by hand into the form clients
// write them in.
package normalize

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"nostrid.lol/chk"
	"nostrid.lol/errorf"
)

var schemes = []string{"ws://", "wss://", "http://", "https://"}

func hasScheme(u string) bool {
	for _, s := range schemes {
		if strings.HasPrefix(u, s) {
			return true
		}
	}
	return false
}

// URL normalizes a relay URL
//
// - Adds wss:// to addresses without a scheme
//
// - Converts http/s to ws/s and drops a :443 port
//
// - Lowercases the host and drops a trailing path slash
func URL(v string) (u string, err error) {
	s := strings.TrimSpace(v)
	if s == "" {
		err = errorf.D("empty relay URL")
		return
	}
	if !hasScheme(strings.ToLower(s)) {
		s = "wss://" + s
	}
	var p *url.URL
	if p, err = url.Parse(s); chk.D(err) {
		return
	}
	p.Scheme = strings.ToLower(p.Scheme)
	switch p.Scheme {
	case "https":
		p.Scheme = "wss"
	case "http":
		p.Scheme = "ws"
	}
	if p.Hostname() == "" {
		err = errorf.D("no host in relay URL '%s'", v)
		return
	}
	host, port := strings.ToLower(p.Hostname()), p.Port()
	if port != "" {
		var n uint64
		if n, err = strconv.ParseUint(port, 10, 16); chk.D(err) {
			err = errorf.D("invalid port in relay URL '%s'", v)
			return
		}
		if n == 443 {
			port = ""
		}
	}
	switch {
	case port != "":
		host = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		host = "[" + host + "]"
	}
	p.Host = host
	p.Path = strings.TrimRight(p.Path, "/")
	p.RawPath = ""
	u = p.String()
	return
}

// URLs normalizes each of the URLs in turn, stopping at the first bad one.
func URLs(v []string) (u []string, err error) {
	for _, s := range v {
		var n string
		if n, err = URL(s); err != nil {
			return nil, err
		}
		u = append(u, n)
	}
	return
}
