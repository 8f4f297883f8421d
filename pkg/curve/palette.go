package curve

import "github.com/sw33tLie/epicurve/pkg/cases"

const defaultColor = "#2563eb"

var (
	colorblindPalette = []string{"#0072B2", "#E69F00", "#009E73", "#CC79A7", "#F0E442", "#56B4E9"}
	grayscalePalette  = []string{"#333333", "#666666", "#999999", "#CCCCCC"}

	fieldPalettes = map[cases.Field]map[string]string{
		cases.FieldClassification: {
			string(cases.Confirmed): "#2563eb",
			string(cases.Probable):  "#f59e0b",
			string(cases.Suspected): "#94a3b8",
		},
		cases.FieldSex: {
			string(cases.Male):       "#3b82f6",
			string(cases.Female):     "#ec4899",
			string(cases.OtherSex):   "#8b5cf6",
			string(cases.UnknownSex): "#64748b",
		},
		cases.FieldAgeGroup: {
			string(cases.Age0to4):   "#ef4444",
			string(cases.Age5to14):  "#f97316",
			string(cases.Age15to24): "#eab308",
			string(cases.Age25to44): "#22c55e",
			string(cases.Age45to64): "#3b82f6",
			string(cases.Age65Plus): "#8b5cf6",
		},
		cases.FieldOutcome: {
			string(cases.Alive):          "#22c55e",
			string(cases.Deceased):       "#ef4444",
			string(cases.UnknownOutcome): "#64748b",
		},
	}
)
