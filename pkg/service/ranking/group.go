package ranking

import (
	"strings"

	"github.com/secmon-lab/cmseval/pkg/domain/model"
)

// Group is one labelled bucket of vendors
type Group struct {
	Label   string          `json:"label"`
	Vendors []*model.Vendor `json:"vendors"`
}

// Count returns the number of vendors in the bucket
func (g Group) Count() int {
	return len(g.Vendors)
}

type bucket struct {
	label   string
	matches func(v *model.Vendor) bool
}

var typeBuckets = []bucket{
	{"Headless SaaS", func(v *model.Vendor) bool { return v.Type == "Headless SaaS" }},
	{"Hybrid", func(v *model.Vendor) bool { return v.Type == "Hybrid" }},
	{"Headless OSS", func(v *model.Vendor) bool { return v.Type == "Headless OSS" }},
	{"Monolithic", func(v *model.Vendor) bool {
		return strings.Contains(v.Type, "Monolithic") || strings.Contains(v.Type, "Coupled")
	}},
	{"Blog-first", func(v *model.Vendor) bool { return v.Type == "Blog-first" }},
}

// hosting buckets overlap: "SaaS/Self" is hybrid, "Self-host/Cloud" is both
// self-hosted and hybrid
var hostingBuckets = []bucket{
	{"SaaS Managed", func(v *model.Vendor) bool { return v.Hosting == "SaaS" }},
	{"Self-Hosted", func(v *model.Vendor) bool { return strings.Contains(v.Hosting, "Self-host") }},
	{"Hybrid Hosting", func(v *model.Vendor) bool { return strings.Contains(v.Hosting, "/") }},
}

// GroupByType buckets vendors by architecture. Every bucket is returned, in
// fixed order, even when empty. Vendors matching no bucket are omitted.
func GroupByType(vendors []*model.Vendor) []Group {
	return groupBy(vendors, typeBuckets)
}

// GroupByHosting buckets vendors by hosting model. A vendor may appear in
// more than one bucket.
func GroupByHosting(vendors []*model.Vendor) []Group {
	return groupBy(vendors, hostingBuckets)
}

func groupBy(vendors []*model.Vendor, buckets []bucket) []Group {
	groups := make([]Group, 0, len(buckets))
	for _, b := range buckets {
		g := Group{Label: b.label, Vendors: []*model.Vendor{}}
		for _, v := range vendors {
			if b.matches(v) {
				g.Vendors = append(g.Vendors, v)
			}
		}
		groups = append(groups, g)
	}
	return groups
}
