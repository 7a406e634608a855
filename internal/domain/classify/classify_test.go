package classify_test

import (
	"testing"

	classify "github.com/okian/pulse/internal/domain/classify"
	model "github.com/okian/pulse/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given the ordered classification rules", t, func() {
		Convey("When classifying boundary pairs", func() {
			cases := []struct {
				systolic  int
				diastolic int
				want      model.Category
			}{
				{119, 79, model.CategoryNormal},
				{0, 0, model.CategoryNormal},
				{120, 79, model.CategoryElevated},
				{129, 79, model.CategoryElevated},
				{130, 79, model.CategoryHBPS1},
				{139, 88, model.CategoryHBPS1},
				{100, 80, model.CategoryHBPS1},
				{100, 88, model.CategoryHBPS1},
				{140, 0, model.CategoryHBPS2},
				{0, 90, model.CategoryHBPS2},
				{200, 200, model.CategoryHBPS2},
				{180, 0, model.CategoryHBPS2},
				{179, 89, model.CategoryHBPS2},
				{100, 89, model.CategoryCrisis},
				{125, 89, model.CategoryCrisis},
			}

			Convey("Then each pair should get its expected category", func() {
				for _, tc := range cases {
					So(classify.Classify(tc.systolic, tc.diastolic), ShouldEqual, tc.want)
				}
			})
		})

		Convey("When classifying every pair in the entry range", func() {
			valid := map[model.Category]bool{
				model.CategoryNormal:   true,
				model.CategoryElevated: true,
				model.CategoryHBPS1:    true,
				model.CategoryHBPS2:    true,
				model.CategoryCrisis:   true,
				model.CategoryUndef:    true,
			}

			Convey("Then classification is total and deterministic", func() {
				for s := 0; s <= 200; s += 5 {
					for d := 0; d <= 200; d += 5 {
						first := classify.Classify(s, d)
						So(valid[first], ShouldBeTrue)
						So(classify.Classify(s, d), ShouldEqual, first)
					}
				}
			})
		})

		Convey("When classifying out-of-range input", func() {
			Convey("Then negative values still fall through the guard chain", func() {
				So(classify.Classify(-10, -10), ShouldEqual, model.CategoryNormal)
				So(classify.Classify(-10, 95), ShouldEqual, model.CategoryHBPS2)
				So(classify.Classify(500, -10), ShouldEqual, model.CategoryHBPS2)
			})
		})

		Convey("When the overlapping crisis rule competes with earlier guards", func() {
			// High systolic is always taken by hbps2 first; the crisis rule
			// only fires through the diastolic==89 gap left by hbps1's
			// exclusive upper bound. The ordering, not the ranges, decides.
			Convey("Then first match wins at the overlaps", func() {
				So(classify.Classify(180, 0), ShouldEqual, model.CategoryHBPS2)
				So(classify.Classify(180, 85), ShouldEqual, model.CategoryHBPS1)
				So(classify.Classify(180, 95), ShouldEqual, model.CategoryHBPS2)
				So(classify.Classify(119, 89), ShouldEqual, model.CategoryCrisis)
			})
		})
	})
}

func TestLegend(t *testing.T) {
	Convey("Given the static legend", t, func() {
		legend := classify.Legend()

		Convey("Then it should list the five clinical categories in order", func() {
			So(len(legend), ShouldEqual, 5)
			So(legend[0].Category, ShouldEqual, model.CategoryNormal)
			So(legend[2].Meaning, ShouldEqual, "high blood pressure stage 1")
			So(legend[4].Category, ShouldEqual, model.CategoryCrisis)
		})

		Convey("Then mutating the returned slice should not affect later calls", func() {
			legend[0].Meaning = "tampered"
			So(classify.Legend()[0].Meaning, ShouldEqual, "normal")
		})
	})
}
