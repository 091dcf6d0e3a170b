package wxpay

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

var (
	numericRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

	errNotXml      = errors.New("not a xml document")
	errEmptyFields = errors.New("no key=value pair found")
)

// EncodeXML 以xml形式编码请求, 数字原样输出, 其余包在CDATA中
func EncodeXML(params Params) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("<xml>")
	for _, k := range keys {
		v := params[k]
		if numericRe.MatchString(v) {
			sb.WriteString("<" + k + ">" + v + "</" + k + ">")
		} else {
			sb.WriteString("<" + k + "><![CDATA[" + escapeCdata(v) + "]]></" + k + ">")
		}
	}
	sb.WriteString("</xml>")
	return sb.String()
}

// "]]>" 不能出现在CDATA内部, 拆成两段
func escapeCdata(v string) string {
	return strings.ReplaceAll(v, "]]>", "]]]]><![CDATA[>")
}

// DecodeParams 先按xml解析, 失败后按http query string解析
func DecodeParams(text string) (Params, error) {
	params, err := decodeXml(text)
	if err == nil {
		return params, nil
	}

	params, qsErr := decodeQuery(text)
	if qsErr != nil {
		return nil, &DecodeError{Text: text, Err: fmt.Errorf("xml: %v, query: %w", err, qsErr)}
	}
	return params, nil
}

// decodeXml 只取根节点下一层的字段, 字段值原样保留, 签名按原值计算
func decodeXml(text string) (Params, error) {
	d := xml.NewDecoder(strings.NewReader(text))
	d.Strict = false
	d.Entity = xml.HTMLEntity
	d.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	params := Params{}
	depth := 0
	rootSeen := false
	var key string
	var value strings.Builder
	nested := false
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				rootSeen = true
			}
			if depth == 2 {
				key = t.Name.Local
				value.Reset()
				nested = false
			}
			if depth == 3 {
				nested = true
			}
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return nil, errNotXml
			}
			if depth == 2 {
				value.Write(t)
			}
		case xml.EndElement:
			if depth == 2 {
				v := value.String()
				// 带子节点时只剩子节点间的空白
				if nested && strings.TrimSpace(v) == "" {
					v = ""
				}
				params[key] = v
			}
			depth--
		}
	}
	if !rootSeen {
		return nil, errNotXml
	}
	return params, nil
}

func decodeQuery(text string) (Params, error) {
	values, err := url.ParseQuery(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	params := Params{}
	found := false
	for k, vs := range values {
		if len(vs) == 0 {
			continue
		}
		params[k] = vs[0]
		if vs[0] != "" {
			found = true
		}
	}
	if !found {
		return nil, errEmptyFields
	}
	return params, nil
}
