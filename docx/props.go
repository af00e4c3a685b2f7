package docx

import (
	"slices"
	"strconv"

	"github.com/beevik/etree"
)

// Порядок дочерних элементов по схеме WordprocessingML. Word отказывается
// открывать файл, если, например, w:b стоит после w:sz.
var (
	rPrOrder = []string{
		"w:rStyle", "w:rFonts", "w:b", "w:bCs", "w:i", "w:iCs", "w:caps", "w:smallCaps",
		"w:strike", "w:dstrike", "w:outline", "w:shadow", "w:emboss", "w:imprint",
		"w:noProof", "w:snapToGrid", "w:vanish", "w:webHidden", "w:color", "w:spacing",
		"w:w", "w:kern", "w:position", "w:sz", "w:szCs", "w:highlight", "w:u", "w:effect",
		"w:bdr", "w:shd", "w:fitText", "w:vertAlign", "w:rtl", "w:cs", "w:em", "w:lang",
		"w:eastAsianLayout", "w:specVanish", "w:oMath",
	}
	tcPrOrder = []string{
		"w:cnfStyle", "w:tcW", "w:gridSpan", "w:hMerge", "w:vMerge", "w:tcBorders", "w:shd",
		"w:noWrap", "w:tcMar", "w:textDirection", "w:tcFitText", "w:vAlign", "w:hideMark",
	}
	tcBordersOrder = []string{
		"w:top", "w:start", "w:left", "w:bottom", "w:end", "w:right",
		"w:insideH", "w:insideV", "w:tl2br", "w:tr2bl",
	}
)

// ensureChild возвращает дочерний элемент tag, при отсутствии вставляя его
// перед первым соседом, который по схеме должен идти позже.
func ensureChild(parent *etree.Element, tag string, order []string) *etree.Element {
	if el := parent.SelectElement(tag); el != nil {
		return el
	}
	el := etree.NewElement(tag)
	pos := len(parent.Child)
	if rank := slices.Index(order, tag); rank >= 0 {
		for _, c := range parent.ChildElements() {
			if slices.Index(order, c.FullTag()) > rank {
				pos = c.Index()
				break
			}
		}
	}
	parent.InsertChildAt(pos, el)
	return el
}

// ensureFirst — для *Pr-элементов, которые обязаны быть первым ребёнком.
func ensureFirst(parent *etree.Element, tag string) *etree.Element {
	if el := parent.SelectElement(tag); el != nil {
		return el
	}
	el := etree.NewElement(tag)
	parent.InsertChildAt(0, el)
	return el
}

func removeChild(parent *etree.Element, tag string) {
	if parent == nil {
		return
	}
	for _, el := range parent.SelectElements(tag) {
		parent.RemoveChild(el)
	}
}

// onOff читает переключатель вида <w:b/> / <w:b w:val="0"/>.
func onOff(el *etree.Element) bool {
	if el == nil {
		return false
	}
	switch el.SelectAttrValue("w:val", "true") {
	case "0", "false", "off":
		return false
	}
	return true
}

func attrValue(el *etree.Element, key string) string {
	if el == nil {
		return ""
	}
	return el.SelectAttrValue(key, "")
}

func attrInt(el *etree.Element, key string) (int, bool) {
	v, err := strconv.Atoi(attrValue(el, key))
	if err != nil {
		return 0, false
	}
	return v, true
}
