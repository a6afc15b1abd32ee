package areamap

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
)

// areaNamespace is the IEC 62325 namespace used by ENTSO-E area documents
// (both the gl: and cim: prefixes bind to it).
const areaNamespace = "urn:iec62325.351:tc57wg16:451-6:area:3:0"

// ExtractAreas parses an area directory document and returns one Area per
// Domain element carrying a non-empty mRID. Domain elements are matched in
// the IEC area namespace first; when that finds nothing, matching falls
// back to the bare local name. Returns an error only for malformed XML.
func ExtractAreas(r io.Reader) ([]Area, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	query := fmt.Sprintf("//*[namespace-uri()=%q and local-name()='Domain']", areaNamespace)
	domains := xmlquery.Find(doc, query)
	if len(domains) == 0 {
		domains = xmlquery.Find(doc, "//*[local-name()='Domain']")
	}

	var areas []Area
	for _, domain := range domains {
		eic := strings.TrimSpace(firstChildText(domain, "mRID"))
		if eic == "" {
			continue
		}
		name := firstChildText(domain, "name", "shortName")
		areas = append(areas, Area{EIC: eic, Name: strings.TrimSpace(name)})
	}
	return areas, nil
}

// firstChildText returns the text of the first matching child element,
// trying every local name in the IEC area namespace before falling back to
// the unqualified forms.
func firstChildText(node *xmlquery.Node, locals ...string) string {
	for _, local := range locals {
		query := fmt.Sprintf("*[namespace-uri()=%q and local-name()=%q]", areaNamespace, local)
		if child := xmlquery.FindOne(node, query); child != nil && strings.TrimSpace(child.InnerText()) != "" {
			return child.InnerText()
		}
	}
	for _, local := range locals {
		if child := xmlquery.FindOne(node, fmt.Sprintf("*[local-name()=%q]", local)); child != nil && strings.TrimSpace(child.InnerText()) != "" {
			return child.InnerText()
		}
	}
	return ""
}
