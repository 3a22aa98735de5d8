package dayahead

import (
	"fmt"
	"sort"
	"strings"
)

// biddingZones mapea códigos de país a códigos EIC de área de licitación.
var biddingZones = map[string]string{
	"AT":       "10YAT-APG------L",
	"BE":       "10YBE----------2",
	"CH":       "10YCH-SWISSGRIDZ",
	"CZ":       "10YCZ-CEPS-----N",
	"DE_LU":    "10Y1001A1001A82H",
	"DK_1":     "10YDK-1--------W",
	"DK_2":     "10YDK-2--------M",
	"ES":       "10YES-REE------0",
	"FR":       "10YFR-RTE------C",
	"IT_NORTH": "10Y1001A1001A73I",
	"NL":       "10YNL----------L",
	"NO_2":     "10YNO-2--------T",
	"PL":       "10YPL-AREA-----S",
	"PT":       "10YPT-REN------W",
	"SE_4":     "10Y1001A1001A47J",
}

// ResolveArea traduce un código de país a su código EIC de área de
// licitación. Un código EIC (16 caracteres) se acepta tal cual.
func ResolveArea(area string) (string, error) {
	if len(area) == 16 {
		return area, nil
	}

	eic, ok := biddingZones[strings.ToUpper(area)]
	if !ok {
		return "", fmt.Errorf("unknown bidding zone %q (known: %s)", area, strings.Join(knownZones(), ", "))
	}
	return eic, nil
}

func knownZones() []string {
	zones := make([]string, 0, len(biddingZones))
	for zone := range biddingZones {
		zones = append(zones, zone)
	}
	sort.Strings(zones)
	return zones
}
