package xmlrpc

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const dateTimeLayout = "20060102T15:04:05"

// ErrUnencodable is returned when text holds a character XML 1.0 cannot
// carry, such as most C0 controls or invalid UTF-8.
var ErrUnencodable = errors.New("xmlrpc: text cannot be encoded")

// \r gets a character reference because parsers fold \r\n into \n.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"\"", "&quot;",
	"'", "&apos;",
	">", "&gt;",
	"<", "&lt;",
	"\r", "&#13;",
)

// Escape replaces the five XML special characters with named entities and
// carriage returns with a character reference.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Marshal renders v as a <value> element.
func Marshal(v Value) (string, error) {
	e := &encoder{}
	e.value(v)
	if e.err != nil {
		return "", e.err
	}
	return e.b.String(), nil
}

// EncodeMethodCall builds a complete <methodCall> document.
func EncodeMethodCall(method string, params ...Value) ([]byte, error) {
	e := &encoder{}
	e.b.WriteString(`<?xml version="1.0"?><methodCall><methodName>`)
	e.text(method)
	e.b.WriteString(`</methodName>`)
	e.params(params)
	e.b.WriteString(`</methodCall>`)
	return e.bytes()
}

// EncodeResponse builds a successful <methodResponse> document.
func EncodeResponse(params ...Value) ([]byte, error) {
	e := &encoder{}
	e.b.WriteString(`<?xml version="1.0"?><methodResponse>`)
	e.params(params)
	e.b.WriteString(`</methodResponse>`)
	return e.bytes()
}

// EncodeFault builds a <methodResponse> carrying a fault struct. Characters
// XML cannot carry are dropped from message.
func EncodeFault(code int, message string) []byte {
	e := &encoder{}
	e.b.WriteString(`<?xml version="1.0"?><methodResponse><fault>`)
	e.value(Struct{
		{Name: "faultCode", Value: Int(code)},
		{Name: "faultString", Value: String(strings.Map(keepXMLChar, message))},
	})
	e.b.WriteString(`</fault></methodResponse>`)
	return []byte(e.b.String())
}

// encoder keeps the first error so the writers can stay linear.
type encoder struct {
	b   strings.Builder
	err error
}

func (e *encoder) bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []byte(e.b.String()), nil
}

func (e *encoder) text(s string) {
	if e.err == nil {
		e.err = checkText(s)
	}
	e.b.WriteString(Escape(s))
}

func (e *encoder) params(params []Value) {
	e.b.WriteString(`<params>`)
	for _, p := range params {
		e.b.WriteString(`<param>`)
		e.value(p)
		e.b.WriteString(`</param>`)
	}
	e.b.WriteString(`</params>`)
}

func (e *encoder) value(v Value) {
	b := &e.b
	b.WriteString(`<value>`)
	switch t := v.(type) {
	case Int:
		b.WriteString(`<int>`)
		b.WriteString(strconv.FormatInt(int64(t), 10))
		b.WriteString(`</int>`)
	case Bool:
		b.WriteString(`<boolean>`)
		if t {
			b.WriteString(`1`)
		} else {
			b.WriteString(`0`)
		}
		b.WriteString(`</boolean>`)
	case String:
		b.WriteString(`<string>`)
		e.text(string(t))
		b.WriteString(`</string>`)
	case Double:
		b.WriteString(`<double>`)
		b.WriteString(strconv.FormatFloat(float64(t), 'f', -1, 64))
		b.WriteString(`</double>`)
	case DateTime:
		b.WriteString(`<dateTime.iso8601>`)
		b.WriteString(time.Time(t).Format(dateTimeLayout))
		b.WriteString(`</dateTime.iso8601>`)
	case Base64:
		b.WriteString(`<base64>`)
		b.WriteString(base64.StdEncoding.EncodeToString(t))
		b.WriteString(`</base64>`)
	case Struct:
		b.WriteString(`<struct>`)
		for _, m := range t {
			b.WriteString(`<member><name>`)
			e.text(m.Name)
			b.WriteString(`</name>`)
			e.value(m.Value)
			b.WriteString(`</member>`)
		}
		b.WriteString(`</struct>`)
	case Array:
		b.WriteString(`<array><data>`)
		for _, item := range t {
			e.value(item)
		}
		b.WriteString(`</data></array>`)
	case nil:
		b.WriteString(`<string></string>`)
	}
	b.WriteString(`</value>`)
}

func checkText(s string) error {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrUnencodable, i)
			}
		}
		if !isXMLChar(r) {
			return fmt.Errorf("%w: character %U at byte %d", ErrUnencodable, r, i)
		}
	}
	return nil
}

// isXMLChar follows the Char production of XML 1.0.
func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

func keepXMLChar(r rune) rune {
	if !isXMLChar(r) {
		return -1
	}
	return r
}
