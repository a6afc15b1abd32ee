package areamap

// ForceISO maps EIC codes whose display names lack an obvious ISO substring
// to their country. An entry here overrides all heuristic detection.
var ForceISO = map[string]string{
	"10Y1001A1001A48H": "NO", // NO5
	"10YBE----------2": "BE",
	"10YNL----------L": "NL",
	"10YPT-REN------W": "PT",
	"10YFR-RTE------C": "FR",
	"10YDE-VE-------2": "DE",
	"10YDE-ENBW-----N": "DE",
	"10YDE-RWENET---I": "DE",
	"10YDE-EON------1": "DE",
	"10YGB----------A": "GB",
	"10YGB-NIR------Y": "GB",
	"10YIE-1001A00010": "IE",
	"10YCH-SWISSGRIDZ": "CH",
}

// ISOLabels maps ISO 3166-1 alpha-2 codes to display names for the
// countries covered by the ENTSO-E transparency platform.
var ISOLabels = map[string]string{
	"SE": "Sweden",
	"NO": "Norway",
	"DK": "Denmark",
	"FI": "Finland",
	"DE": "Germany",
	"FR": "France",
	"NL": "Netherlands",
	"BE": "Belgium",
	"AT": "Austria",
	"PL": "Poland",
	"EE": "Estonia",
	"LV": "Latvia",
	"LT": "Lithuania",
	"IE": "Ireland",
	"GB": "Great Britain",
	"PT": "Portugal",
	"ES": "Spain",
	"IT": "Italy",
	"CH": "Switzerland",
	"CZ": "Czech Republic",
	"SK": "Slovakia",
	"SI": "Slovenia",
	"HU": "Hungary",
	"RO": "Romania",
	"BG": "Bulgaria",
	"HR": "Croatia",
	"GR": "Greece",
	"RS": "Serbia",
	"BA": "Bosnia & Herzegovina",
	"ME": "Montenegro",
	"MK": "North Macedonia",
	"AL": "Albania",
	"TR": "Turkey",
}

// Label returns the display name for an ISO code, or the code itself when
// no label is known.
func Label(iso string) string {
	if label, ok := ISOLabels[iso]; ok {
		return label
	}
	return iso
}
