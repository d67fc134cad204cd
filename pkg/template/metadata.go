package template

import (
	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/beevik/etree"
)

// Info holds the string values of a TemplateInfo.plist top-level dict
type Info map[string]string

// Plist keys read into Template fields
const (
	keyKind        = "Kind"
	keyDescription = "Description"
	keySummary     = "Summary"
)

// ParseInfo reads the top-level <dict> of an XML property list. Only
// <string> values are kept; nested arrays and dicts are skipped.
func ParseInfo(data []byte) (Info, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateInvalid, "malformed property list")
	}

	dict := doc.FindElement("/plist/dict")
	if dict == nil {
		return nil, errors.New(errors.ErrTemplateInvalid, "property list has no top-level dict")
	}

	info := Info{}
	children := dict.ChildElements()
	for i := 0; i+1 < len(children); i++ {
		if children[i].Tag != "key" {
			continue
		}
		key, value := children[i].Text(), children[i+1]
		i++
		if value.Tag == "string" {
			info[key] = value.Text()
		}
	}
	return info, nil
}

func (t *Template) applyInfo(info Info) {
	t.Kind = info[keyKind]
	t.Description = info[keyDescription]
	t.Summary = info[keySummary]
}
