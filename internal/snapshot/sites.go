package snapshot

import "github.com/lox/dotoo/internal/activity"

// Site is a Met Office forecast page, keyed by its location geohash.
type Site struct {
	Name string
	Code string
}

// Sites are the Met Office pages fetched for a snapshot.
var Sites = []Site{
	{"bristol", "gcnhtnumz"},
	{"porthcawl", "gcjkgequs"},
	{"woolacombe", "gcj5079ep"},
	{"brecon", "gcjxdb9vh"},
	{"llanberis", "gcmn4jg3d"},
	{"keswick", "gcty8ey7h"},
	{"fort_william", "gfh75zeru"},
	{"poole", "gcn8db1mu"},
	{"truro", "gbumvn49q"},
	{"newquay", "gbuqu9f0x"},
	{"weymouth", "gbyrbjgrk"},
	{"aviemore", "gfjm35bwe"},
	{"pontypool", "gcjy4ghnx"},
}

// siteFor maps each location to the page its forecast is read from.
// Locations without their own page borrow the nearest one.
var siteFor = map[activity.Location]string{
	activity.Bristol:     "bristol",
	activity.Porthcawl:   "porthcawl",
	activity.Woolacombe:  "woolacombe",
	activity.Brecon:      "brecon",
	activity.Llanberis:   "llanberis",
	activity.Keswick:     "keswick",
	activity.FortWilliam: "fort_william",
	activity.Poole:       "poole",
	activity.Truro:       "truro",
	activity.Newquay:     "newquay",
	activity.Weymouth:    "weymouth",
	activity.Aviemore:    "aviemore",
	activity.Axbridge:    "bristol",
	activity.Llandegfedd: "pontypool",
	activity.Weston:      "bristol",
}
