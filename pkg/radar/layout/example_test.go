package layout_test

import (
	"fmt"

	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
)

func ExampleCompute() {
	dims := []radar.Dimension{
		{ID: "Languages", Name: "Languages"},
		{ID: "Tools", Name: "Tools"},
		{ID: "Platforms", Name: "Platforms"},
		{ID: "Methods", Name: "Methods"},
	}
	techs := []radar.Technology{
		{ID: "react", Name: "React", Ring: radar.Adopt, Dimension: "Tools"},
		{ID: "cobol", Name: "COBOL", Ring: radar.Hold, Dimension: "Mainframes"},
	}

	l := layout.Compute(dims, techs, 700)

	fmt.Printf("center: %.0f, max radius: %.0f\n", l.Center.X, l.MaxRadius)
	for _, r := range l.Rings {
		fmt.Printf("%s: %.1f\n", r.Ring, r.Radius)
	}
	fmt.Printf("placed: %d, skipped: %s (%s)\n", len(l.Points), l.Skipped[0].ID, l.Skipped[0].Reason)
	// Output:
	// center: 350, max radius: 270
	// adopt: 67.5
	// trial: 135.0
	// assess: 202.5
	// hold: 270.0
	// placed: 1, skipped: cobol (unknown dimension)
}

func ExampleSeed() {
	fmt.Println(layout.Seed("react"))
	a, r := layout.Jitter(layout.Seed("react"))
	fmt.Printf("%.3f %.2f\n", a, r)
	// Output:
	// 527
	// 0.135 0.27
}

func ExamplePolygon_Path() {
	p := layout.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
	fmt.Println(p.Path())
	// Output:
	// M 0.00 0.00 L 10.00 0.00 L 5.00 8.00 Z
}
