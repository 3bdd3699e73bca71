package extractors

import "strings"

// Regions is the fixed province/metropolitan-city list, in storage order.
var Regions = []string{
	"서울", "부산", "대구", "인천", "광주", "대전", "울산", "세종",
	"경기", "강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주",
}

// ExtractRegionLimit lists the regions named in the residency text.
func ExtractRegionLimit(residencyDetail string) *string {
	if residencyDetail == "" || ContainsAny(residencyDetail, nationwide...) {
		return nil
	}
	var found []string
	for _, region := range Regions {
		if strings.Contains(residencyDetail, region) {
			found = append(found, region)
		}
	}
	return joined(found)
}

// IsNationwide reports whether residency text states no regional limit.
func IsNationwide(residencyDetail string) bool {
	return ContainsAny(residencyDetail, nationwide...)
}
