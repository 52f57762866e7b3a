package domain

import "strings"

// regionCentroid pairs a USPS state or territory code with an approximate
// geographic center, good to roughly a county's width. Used only as the
// last-resort placement for alerts without any georss geometry.
type regionCentroid struct {
	code  string
	point GeoPoint
}

// regionCentroids is deliberately an ordered slice, not a map: when an
// areaDesc mentions several codes the first table entry wins, and that
// tie-break must be deterministic across runs.
var regionCentroids = []regionCentroid{
	{"AK", GeoPoint{64.0685, -152.2782}},
	{"AL", GeoPoint{32.7794, -86.8287}},
	{"AR", GeoPoint{34.8938, -92.4426}},
	{"AS", GeoPoint{-14.2710, -170.1322}},
	{"AZ", GeoPoint{34.2744, -111.6602}},
	{"CA", GeoPoint{37.1841, -119.4696}},
	{"CO", GeoPoint{38.9972, -105.5478}},
	{"CT", GeoPoint{41.6219, -72.7273}},
	{"DC", GeoPoint{38.9101, -77.0147}},
	{"DE", GeoPoint{38.9896, -75.5050}},
	{"FL", GeoPoint{28.6305, -82.4497}},
	{"GA", GeoPoint{32.6415, -83.4426}},
	{"GU", GeoPoint{13.4443, 144.7937}},
	{"HI", GeoPoint{20.2927, -156.3737}},
	{"IA", GeoPoint{42.0751, -93.4960}},
	{"ID", GeoPoint{44.3509, -114.6130}},
	{"IL", GeoPoint{40.0417, -89.1965}},
	{"IN", GeoPoint{39.8942, -86.2816}},
	{"KS", GeoPoint{38.4937, -98.3804}},
	{"KY", GeoPoint{37.5347, -85.3021}},
	{"LA", GeoPoint{31.0689, -91.9968}},
	{"MA", GeoPoint{42.2596, -71.8083}},
	{"MD", GeoPoint{39.0550, -76.7909}},
	{"ME", GeoPoint{45.3695, -69.2428}},
	{"MI", GeoPoint{44.3467, -85.4102}},
	{"MN", GeoPoint{46.2807, -94.3053}},
	{"MO", GeoPoint{38.3566, -92.4580}},
	{"MP", GeoPoint{15.0979, 145.6739}},
	{"MS", GeoPoint{32.7364, -89.6678}},
	{"MT", GeoPoint{47.0527, -109.6333}},
	{"NC", GeoPoint{35.5557, -79.3877}},
	{"ND", GeoPoint{47.4501, -100.4659}},
	{"NE", GeoPoint{41.5378, -99.7951}},
	{"NH", GeoPoint{43.6805, -71.5811}},
	{"NJ", GeoPoint{40.1907, -74.6728}},
	{"NM", GeoPoint{34.4071, -106.1126}},
	{"NV", GeoPoint{39.3289, -116.6312}},
	{"NY", GeoPoint{42.9538, -75.5268}},
	{"OH", GeoPoint{40.2862, -82.7937}},
	{"OK", GeoPoint{35.5889, -97.4943}},
	{"OR", GeoPoint{43.9336, -120.5583}},
	{"PA", GeoPoint{40.8781, -77.7996}},
	{"PR", GeoPoint{18.2208, -66.5901}},
	{"RI", GeoPoint{41.6762, -71.5562}},
	{"SC", GeoPoint{33.9169, -80.8964}},
	{"SD", GeoPoint{44.4443, -100.2263}},
	{"TN", GeoPoint{35.8580, -86.3505}},
	{"TX", GeoPoint{31.4757, -99.3312}},
	{"UT", GeoPoint{39.3055, -111.6703}},
	{"VA", GeoPoint{37.5215, -78.8537}},
	{"VI", GeoPoint{18.3358, -64.8963}},
	{"VT", GeoPoint{44.0687, -72.6658}},
	{"WA", GeoPoint{47.3826, -120.4472}},
	{"WI", GeoPoint{44.6243, -89.9941}},
	{"WV", GeoPoint{38.6409, -80.6227}},
	{"WY", GeoPoint{42.9957, -107.5512}},
}

// regionPoint scans the areaDesc for the first region code it contains and
// returns that region's approximate center.
func regionPoint(areaDesc string) (GeoPoint, bool) {
	if areaDesc == "" {
		return GeoPoint{}, false
	}
	for _, rc := range regionCentroids {
		if strings.Contains(areaDesc, rc.code) {
			return rc.point, true
		}
	}
	return GeoPoint{}, false
}
