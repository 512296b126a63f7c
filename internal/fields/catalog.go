package fields

import "strings"

// Code is a two-character Adlib field tag such as "TI" or "IN". Codes are case
// sensitive.
type Code string

// String returns the raw tag.
func (c Code) String() string { return string(c) }

// Entry describes one catalog field.
type Entry struct {
	Code        Code   `json:"code" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Catalog codes, in export order.
const (
	Priref            Code = "%0"
	ObjectNumber      Code = "IN"
	ObjectName        Code = "OB"
	Title             Code = "TI"
	Description       Code = "BE"
	Creator           Code = "VV"
	CreatorRole       Code = "VR"
	ProductionStart   Code = "VJ"
	ProductionEnd     Code = "VE"
	ProductionPlace   Code = "PL"
	Material          Code = "MA"
	Technique         Code = "TE"
	DimensionType     Code = "DT"
	DimensionValue    Code = "DW"
	DimensionUnit     Code = "DE"
	Collection        Code = "CO"
	Institution       Code = "IV"
	ContentSubject    Code = "SU"
	AssociatedPlace   Code = "AP"
	RelatedObject     Code = "nt"
	RelatedObjectNote Code = "nn"
	ReproductionRef   Code = "FN"
	ReproductionType  Code = "RT"
	ReproductionNotes Code = "RN"
	ExternalLink      Code = "UR"
	Rights            Code = "RE"
	Notes             Code = "AN"
	InputName         Code = "ig"
	InputDate         Code = "di"
	EditName          Code = "dn"
	EditDate          Code = "de"
)

var catalog = []Entry{
	{Priref, "priref", "record number assigned by the cataloguing system"},
	{ObjectNumber, "object_number", "inventory number"},
	{ObjectName, "object_name", "object type or classification"},
	{Title, "title", "title of the object"},
	{Description, "description", "physical description"},
	{Creator, "creator", "maker or author"},
	{CreatorRole, "creator.role", "role of the maker"},
	{ProductionStart, "production.date.start", "earliest production date"},
	{ProductionEnd, "production.date.end", "latest production date"},
	{ProductionPlace, "production.place", "place of production"},
	{Material, "material", "material"},
	{Technique, "technique", "production technique"},
	{DimensionType, "dimension.type", "measured dimension"},
	{DimensionValue, "dimension.value", "dimension value"},
	{DimensionUnit, "dimension.unit", "dimension unit"},
	{Collection, "collection", "collection the object belongs to"},
	{Institution, "institution.name", "holding institution"},
	{ContentSubject, "content.subject", "subject keyword"},
	{AssociatedPlace, "association.place", "associated place"},
	{RelatedObject, "related_object.reference", "object number of a related object"},
	{RelatedObjectNote, "related_object.notes", "note on the relation"},
	{ReproductionRef, "reproduction.reference", "file name of a digital reproduction"},
	{ReproductionType, "reproduction.type", "type of reproduction"},
	{ReproductionNotes, "reproduction.notes", "notes on the reproduction"},
	{ExternalLink, "external_link.url", "URL of an external resource"},
	{Rights, "rights.notes", "rights statement"},
	{Notes, "notes", "free text notes"},
	{InputName, "input.name", "user who created the record"},
	{InputDate, "input.date", "creation date"},
	{EditName, "edit.name", "user who last edited the record"},
	{EditDate, "edit.date", "last edit date"},
}

var (
	byCode = make(map[Code]int, len(catalog))
	byName = make(map[string]Code, len(catalog))
)

func init() {
	for i, e := range catalog {
		byCode[e.Code] = i
		byName[e.Name] = e.Code
	}
}

// NameOf returns the field name registered for code.
func NameOf(code Code) (string, bool) {
	i, ok := byCode[code]
	if !ok {
		return "", false
	}
	return catalog[i].Name, true
}

// CodeOf returns the code registered under the exact field name.
func CodeOf(name string) (Code, bool) {
	code, ok := byName[name]
	return code, ok
}

// Known reports whether code is part of the catalog.
func Known(code Code) bool {
	_, ok := byCode[code]
	return ok
}

// Resolve maps a column key to a code. A key that already is a catalog code wins
// over a name lookup.
func Resolve(key string) (Code, bool) {
	if Known(Code(key)) {
		return Code(key), true
	}
	return CodeOf(key)
}

// Codes returns every catalog code in export order.
func Codes() []Code {
	out := make([]Code, len(catalog))
	for i, e := range catalog {
		out[i] = e.Code
	}
	return out
}

// All returns a copy of the catalog entries in export order.
func All() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// ParseCodes splits a comma separated list of codes or names. Blank items are
// ignored; items that resolve through the catalog are returned as codes and the
// rest are reported as unknown.
func ParseCodes(list string) ([]Code, []string) {
	var codes []Code
	var unknown []string
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		code, ok := Resolve(item)
		if !ok {
			unknown = append(unknown, item)
			continue
		}
		codes = append(codes, code)
	}
	return codes, unknown
}
