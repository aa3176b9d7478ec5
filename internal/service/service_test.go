package service

import (
	"testing"

	"aesthetic-cakes/internal/catalog"
	"aesthetic-cakes/internal/model"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	chocolateCake = model.Product{ID: 1, Kind: model.KindCake, Name: "Chocolate Dream", Description: "Rich dark chocolate layers", Category: "Birthday", Price: "$45", Image: "/img/cake-1.jpg"}
	weddingCake   = model.Product{ID: 2, Kind: model.KindCake, Name: "Ivory Tiers", Description: "Three tiers of vanilla sponge", Category: "Wedding", Price: "From $350", Image: "/img/cake-2.jpg"}
	customCake    = model.Product{ID: 3, Kind: model.KindCake, Name: "Custom Creation", Description: "Designed with you", Category: "Specialty", Price: "Ask us", Image: "/img/cake-3.jpg"}
	brownies      = model.Product{ID: 1, Kind: model.KindSweet, Name: "Fudge Brownies", Description: "Chewy chocolate squares", Category: "Brownies", Price: "$3.50/piece", Image: "/img/sweet-1.jpg"}
	macarons      = model.Product{ID: 2, Kind: model.KindSweet, Name: "French Macarons", Description: "Almond shells", Category: "Cookies", Price: "$24/dozen", Image: "/img/sweet-2.jpg"}
)

// testCatalog returns a small catalogue where cake 1 and sweet 1 share an ID.
func testCatalog() *catalog.Catalog {
	return catalog.New(
		&catalog.Section{
			Kind:       model.KindCake,
			Categories: []string{"Wedding", "Birthday", "Specialty"},
			Products:   []model.Product{chocolateCake, weddingCake, customCake},
		},
		&catalog.Section{
			Kind:       model.KindSweet,
			Categories: []string{"Brownies", "Cookies"},
			Products:   []model.Product{brownies, macarons},
		},
	)
}
