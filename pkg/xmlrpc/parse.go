package xmlrpc

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrMalformed wraps every error produced while reading a document.
var ErrMalformed = errors.New("xmlrpc: malformed document")

// Response is a decoded <methodResponse> or <methodCall>.
type Response struct {
	// Method is set when the document was a <methodCall>.
	Method string
	// Fault is non-nil when the server answered with a fault.
	Fault  Struct
	Params []Value
}

// IsFault reports whether the response carried a fault struct.
func (r *Response) IsFault() bool {
	return r.Fault != nil
}

// FaultCode returns faultCode as text whether it was sent as int or string.
func (r *Response) FaultCode() string {
	return r.Fault.String("faultCode")
}

// FaultString returns the fault message.
func (r *Response) FaultString() string {
	return r.Fault.String("faultString")
}

// Parse decodes a whole document held in memory.
func Parse(data []byte) (*Response, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a document token by token. Containers under construction
// live on an explicit stack; nothing is buffered beyond the current scalar.
func Decode(r io.Reader) (*Response, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }

	p := &parser{}
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			err = p.start(t.Name.Local)
		case xml.EndElement:
			err = p.end(t.Name.Local)
		case xml.CharData:
			p.text.Write(t)
		}
		if err != nil {
			return nil, err
		}
	}

	if !p.rooted {
		return nil, fmt.Errorf("%w: no <methodResponse> or <methodCall> element", ErrMalformed)
	}
	if len(p.containers) > 0 || len(p.values) > 0 {
		return nil, fmt.Errorf("%w: unexpected end of document", ErrMalformed)
	}
	return &p.resp, nil
}

type container struct {
	isStruct bool
	members  Struct
	items    Array
	name     string
}

type parser struct {
	containers []*container
	// values has one entry per open <value>; true once a type element was seen.
	values  []bool
	text    strings.Builder
	current Value
	ready   bool
	rooted  bool
	resp    Response
}

func (p *parser) top() *container {
	if len(p.containers) == 0 {
		return nil
	}
	return p.containers[len(p.containers)-1]
}

func (p *parser) markTyped() error {
	if len(p.values) == 0 {
		return fmt.Errorf("%w: type element outside <value>", ErrMalformed)
	}
	p.values[len(p.values)-1] = true
	return nil
}

func (p *parser) start(tag string) error {
	switch tag {
	case "value":
		p.values = append(p.values, false)
		p.ready = false
		p.text.Reset()
	case "struct":
		if err := p.markTyped(); err != nil {
			return err
		}
		p.containers = append(p.containers, &container{isStruct: true, members: Struct{}})
	case "array":
		if err := p.markTyped(); err != nil {
			return err
		}
		p.containers = append(p.containers, &container{items: Array{}})
	case "string", "int", "i4", "i8", "boolean", "double", "base64", "dateTime.iso8601":
		if err := p.markTyped(); err != nil {
			return err
		}
		p.text.Reset()
	case "name", "methodName":
		p.text.Reset()
	case "member", "param", "fault":
		p.ready = false
	case "methodCall", "methodResponse":
		p.rooted = true
	case "params", "data":
	default:
		return fmt.Errorf("%w: unexpected element <%s>", ErrMalformed, tag)
	}
	return nil
}

func (p *parser) end(tag string) error {
	switch tag {
	case "value":
		if len(p.values) == 0 {
			return fmt.Errorf("%w: </value> without <value>", ErrMalformed)
		}
		typed := p.values[len(p.values)-1]
		p.values = p.values[:len(p.values)-1]
		if !typed {
			p.setCurrent(String(p.text.String()))
		}
		if c := p.top(); c != nil && !c.isStruct {
			c.items = append(c.items, p.current)
		}
	case "string":
		p.setCurrent(String(p.text.String()))
	case "int", "i4", "i8":
		n, err := strconv.ParseInt(strings.TrimSpace(p.text.String()), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: bad <%s>: %v", ErrMalformed, tag, err)
		}
		p.setCurrent(Int(n))
	case "boolean":
		switch strings.TrimSpace(p.text.String()) {
		case "1", "true":
			p.setCurrent(Bool(true))
		case "0", "false":
			p.setCurrent(Bool(false))
		default:
			return fmt.Errorf("%w: bad <boolean> %q", ErrMalformed, p.text.String())
		}
	case "double":
		f, err := strconv.ParseFloat(strings.TrimSpace(p.text.String()), 64)
		if err != nil {
			return fmt.Errorf("%w: bad <double>: %v", ErrMalformed, err)
		}
		p.setCurrent(Double(f))
	case "dateTime.iso8601":
		ts, err := parseDateTime(strings.TrimSpace(p.text.String()))
		if err != nil {
			return err
		}
		p.setCurrent(DateTime(ts))
	case "base64":
		raw := strings.Join(strings.Fields(p.text.String()), "")
		data, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return fmt.Errorf("%w: bad <base64>: %v", ErrMalformed, err)
		}
		p.setCurrent(Base64(data))
	case "name":
		c := p.top()
		if c == nil || !c.isStruct {
			return fmt.Errorf("%w: <name> outside <struct>", ErrMalformed)
		}
		c.name = strings.TrimSpace(p.text.String())
	case "member":
		c := p.top()
		if c == nil || !c.isStruct {
			return fmt.Errorf("%w: </member> without <struct>", ErrMalformed)
		}
		if !p.ready {
			return fmt.Errorf("%w: member %q has no value", ErrMalformed, c.name)
		}
		c.members = c.members.Set(c.name, p.current)
		c.name = ""
	case "struct":
		c := p.top()
		if c == nil || !c.isStruct {
			return fmt.Errorf("%w: </struct> without <struct>", ErrMalformed)
		}
		p.containers = p.containers[:len(p.containers)-1]
		p.setCurrent(c.members)
	case "array":
		c := p.top()
		if c == nil || c.isStruct {
			return fmt.Errorf("%w: </array> without <array>", ErrMalformed)
		}
		p.containers = p.containers[:len(p.containers)-1]
		p.setCurrent(c.items)
	case "param":
		if !p.ready {
			return fmt.Errorf("%w: <param> has no value", ErrMalformed)
		}
		p.resp.Params = append(p.resp.Params, p.current)
	case "fault":
		s, ok := p.current.(Struct)
		if !p.ready || !ok {
			return fmt.Errorf("%w: <fault> does not hold a struct", ErrMalformed)
		}
		p.resp.Fault = s
	case "methodName":
		p.resp.Method = strings.TrimSpace(p.text.String())
	}
	return nil
}

func (p *parser) setCurrent(v Value) {
	p.current = v
	p.ready = true
}

var dateTimeLayouts = []string{
	dateTimeLayout,
	"20060102T15:04:05Z07:00",
	"20060102T15:04:05Z",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad <dateTime.iso8601> %q", ErrMalformed, s)
}
