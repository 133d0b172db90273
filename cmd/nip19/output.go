package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"nostrid.lol/bech32encoding/pointers"
	"nostrid.lol/chk"
	"nostrid.lol/config"
	"nostrid.lol/errorf"
)

// printer writes decoded entities in one of config.Formats. JSON is one object
// per line, YAML is a stream of documents and text is key: value lines with a
// blank line between entities.
type printer struct {
	format string
	w      io.Writer
	yaml   *yaml.Encoder
	count  int
}

func newPrinter(w io.Writer, format string) (p *printer, err error) {
	if !config.ValidFormat(format) {
		err = errorf.E("unknown format '%s', must be one of %v", format, config.Formats)
		return
	}
	p = &printer{format: format, w: w}
	if format == "yaml" {
		p.yaml = yaml.NewEncoder(w)
		p.yaml.SetIndent(2)
	}
	return
}

func (p *printer) Print(e pointers.T) (err error) {
	v := pointers.ViewOf(e)
	defer func() { p.count++ }()
	switch p.format {
	case "json":
		var b []byte
		if b, err = json.Marshal(v); chk.E(err) {
			return
		}
		_, err = fmt.Fprintf(p.w, "%s\n", b)
	case "yaml":
		err = p.yaml.Encode(v)
	default:
		if p.count > 0 {
			if _, err = fmt.Fprintln(p.w); err != nil {
				return
			}
		}
		err = writeText(p.w, v)
	}
	return
}

// Close flushes the YAML stream.
func (p *printer) Close() (err error) {
	if p.yaml != nil {
		err = p.yaml.Close()
	}
	return
}

func writeText(w io.Writer, v pointers.View) (err error) {
	line := func(k, val string) {
		if err == nil && val != "" {
			_, err = fmt.Fprintf(w, "%-10s %s\n", k+":", val)
		}
	}
	line("type", v.Type)
	line("id", v.ID)
	line("pubkey", v.PublicKey)
	line("seckey", v.SecretKey)
	line("author", v.Author)
	if v.Identifier != nil {
		line("identifier", fmt.Sprintf("%q", *v.Identifier))
	}
	if v.Kind != nil {
		k := fmt.Sprint(*v.Kind)
		switch {
		case v.KindName != "":
			k += " (" + v.KindName + ", " + v.KindClass + ")"
		case v.KindClass != "":
			k += " (" + v.KindClass + ")"
		}
		line("kind", k)
	}
	for _, r := range v.Relays {
		line("relay", r)
	}
	for _, r := range v.Extra {
		line("extra", fmt.Sprintf("%d %s", r.Type, r.Value))
	}
	return
}
