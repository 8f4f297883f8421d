package cases

type exampleCase struct {
	date, time     string
	classification Classification
	age            float64
	sex            Sex
	outcome        Outcome
	custom         string
}

// exampleCases is a point-source foodborne outbreak: guests fell ill after a
// wedding reception dinner on the evening of 2024-01-14.
var exampleCases = []exampleCase{
	{"2024-01-15", "14:00", Confirmed, 34, Female, Alive, "Bride family"},
	{"2024-01-15", "16:30", Confirmed, 42, Male, Alive, "Groom family"},
	{"2024-01-15", "18:00", Confirmed, 28, Female, Alive, "Bride family"},
	{"2024-01-15", "19:00", Probable, 67, Male, Alive, "Groom family"},
	{"2024-01-15", "21:00", Confirmed, 31, Male, Alive, "Guest"},
	{"2024-01-15", "22:00", Confirmed, 45, Female, Alive, "Guest"},
	{"2024-01-15", "23:30", Confirmed, 52, Female, Alive, "Guest"},
	{"2024-01-16", "01:00", Confirmed, 38, Male, Alive, "Guest"},
	{"2024-01-16", "02:30", Confirmed, 29, Female, Alive, "Bride family"},
	{"2024-01-16", "04:00", Confirmed, 61, Male, Alive, "Groom family"},
	{"2024-01-16", "05:00", Probable, 55, Female, Alive, "Guest"},
	{"2024-01-16", "06:00", Confirmed, 33, Male, Alive, "Guest"},
	{"2024-01-16", "07:30", Confirmed, 47, Female, Alive, "Guest"},
	{"2024-01-16", "08:00", Confirmed, 26, Male, Alive, "Bride family"},
	{"2024-01-16", "09:00", Confirmed, 71, Female, Deceased, "Groom family"},
	{"2024-01-16", "10:00", Confirmed, 39, Male, Alive, "Guest"},
	{"2024-01-16", "11:30", Probable, 44, Female, Alive, "Guest"},
	{"2024-01-16", "13:00", Confirmed, 36, Male, Alive, "Guest"},
	{"2024-01-16", "14:00", Confirmed, 58, Female, Alive, "Bride family"},
	{"2024-01-16", "16:00", Confirmed, 41, Male, Alive, "Guest"},
	{"2024-01-16", "18:00", Suspected, 23, Female, Alive, "Guest"},
	{"2024-01-16", "20:00", Confirmed, 49, Male, Alive, "Groom family"},
	{"2024-01-17", "02:00", Confirmed, 63, Female, Alive, "Guest"},
	{"2024-01-17", "08:00", Probable, 35, Male, Alive, "Guest"},
	{"2024-01-17", "14:00", Confirmed, 27, Female, Alive, "Bride family"},
	{"2024-01-17", "22:00", Suspected, 54, Male, Alive, "Guest"},
	{"2024-01-18", "10:00", Confirmed, 46, Female, Alive, "Guest"},
	{"2024-01-18", "18:00", Suspected, 32, Male, Alive, "Groom family"},
}

// ExampleInputs returns the demo outbreak line list.
func ExampleInputs() []Input {
	out := make([]Input, 0, len(exampleCases))
	for _, c := range exampleCases {
		age := c.age
		out = append(out, Input{
			OnsetDate:      c.date,
			OnsetTime:      c.time,
			Classification: c.classification,
			Age:            &age,
			Sex:            c.sex,
			Outcome:        c.outcome,
			Custom:         c.custom,
		})
	}
	return out
}
