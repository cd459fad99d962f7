package catalog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

// DefaultJSTarget is the property the jQuery Ketchup plugin reads its
// messages from.
const DefaultJSTarget = "$.fn.ketchup.messages"

// MarshalJSON encodes the catalog as a JSON object whose keys keep catalog
// order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(&buf, e, ":"); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes the catalog to w as an ordered, indented JSON object.
func (c *Catalog) WriteJSON(w io.Writer) error {
	return c.writeObject(w, "", "\n")
}

// WriteJS writes the catalog as a JavaScript assignment to target, the form
// the browser plugin loads as a script:
//
//	$.fn.ketchup.messages = {
//	  "required": "This field is required.",
//	  ...
//	};
//
// An empty target defaults to DefaultJSTarget.
func (c *Catalog) WriteJS(w io.Writer, target string) error {
	if target == "" {
		target = DefaultJSTarget
	}
	return c.writeObject(w, target+" = ", ";\n")
}

func (c *Catalog) writeObject(w io.Writer, prefix, suffix string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(prefix)
	bw.WriteString("{\n")

	var line bytes.Buffer
	for i, e := range c.entries {
		line.Reset()
		line.WriteString("  ")
		if err := writePair(&line, e, ": "); err != nil {
			return err
		}
		if i < len(c.entries)-1 {
			line.WriteByte(',')
		}
		line.WriteByte('\n')
		bw.Write(line.Bytes())
	}

	bw.WriteString("}")
	bw.WriteString(suffix)
	return bw.Flush()
}

// writePair writes `"rule"<sep>"template"`. JSON string literals are valid
// JavaScript, and HTML-sensitive characters stay escaped so the output is safe
// inside a <script> element.
func writePair(buf *bytes.Buffer, e Entry, sep string) error {
	key, err := json.Marshal(e.Rule)
	if err != nil {
		return err
	}
	val, err := json.Marshal(e.Template)
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteString(sep)
	buf.Write(val)
	return nil
}
