package sandhi

// specialRules covers pragrhya exceptions, Vedic-only combinations,
// samprasarana, and prefix junctions. Vedic-only rules are skipped by
// ApplicableRules unless Vedic mode is requested.
func specialRules() []Rule {
	return []Rule{
		// Pragrhya: forms exempt from sandhi
		{ID: "SP01", Category: CategorySpecial, LeftPattern: "ई", RightPattern: "अ", Result: "ई", Priority: 5,
			Description: "Pragṛhya: dual ī (no sandhi)"},
		{ID: "SP02", Category: CategorySpecial, LeftPattern: "ऊ", RightPattern: "अ", Result: "ऊ", Priority: 5,
			Description: "Pragṛhya: dual ū (no sandhi)"},
		{ID: "SP03", Category: CategorySpecial, LeftPattern: "ए", RightPattern: "अ", Result: "ए", Priority: 5,
			Description: "Pragṛhya: pronominal e (no sandhi)"},

		// Pluta
		{ID: "SP04", Category: CategorySpecial, LeftPattern: "अ३", RightPattern: "अ", Result: "आ३", Priority: 3, VedicOnly: true,
			Description: "Pluta sandhi (triple mora)"},

		// Lopa
		{ID: "SP05", Category: CategorySpecial, LeftPattern: "अ", RightPattern: "", Result: "", Priority: 6,
			Description: "Final a deletion before vowel"},
		{ID: "SP06", Category: CategorySpecial, LeftPattern: "इ", RightPattern: "", Result: "", Priority: 4, VedicOnly: true,
			Description: "Vedic i deletion"},

		// Accent interaction
		{ID: "SP07", Category: CategorySpecial, LeftPattern: "॒", RightPattern: "॑", Result: "॒॑", Priority: 2, VedicOnly: true,
			Description: "Accent preservation"},

		// Vedic hiatus
		{ID: "SP08", Category: CategorySpecial, LeftPattern: "आ", RightPattern: "इ", Result: "आइ", Priority: 4, VedicOnly: true,
			Description: "Vedic: no guna in meters"},
		{ID: "SP09", Category: CategorySpecial, LeftPattern: "इ", RightPattern: "आ", Result: "इआ", Priority: 4, VedicOnly: true,
			Description: "Vedic hiatus preservation"},

		// Samprasarana
		{ID: "SP10", Category: CategorySpecial, LeftPattern: "य", RightPattern: "इ", Result: "इ", Priority: 5,
			Description: "Samprasarana: y → i"},
		{ID: "SP11", Category: CategorySpecial, LeftPattern: "व", RightPattern: "उ", Result: "उ", Priority: 5,
			Description: "Samprasarana: v → u"},

		// Compound-internal clusters
		{ID: "SP12", Category: CategorySpecial, LeftPattern: "म", RightPattern: "ह", Result: "म्ह", Priority: 4,
			Description: "Special: m + h cluster"},
		{ID: "SP13", Category: CategorySpecial, LeftPattern: "त्", RightPattern: "", Result: "त्", Priority: 6,
			Description: "t + s in compounds", Examples: []Example{{"सत्", "सङ्गः", "सत्सङ्गः"}}},
		{ID: "SP14", Category: CategorySpecial, LeftPattern: "द्", RightPattern: "", Result: "त्", Priority: 6, Sutra: "8.4.55",
			Description: "d + s → ts in compounds", Examples: []Example{{"तद्", "सुखम्", "तत्सुखम्"}}},

		// Jastva
		{ID: "SP15", Category: CategorySpecial, LeftPattern: "क्", RightPattern: "", Result: "क्", Priority: 6, Sutra: "8.2.41",
			Description: "k + s (unvoiced cluster)", Examples: []Example{{"वाक्", "संस्थिता", "वाक्संस्थिता"}}},
		{ID: "SP16", Category: CategorySpecial, LeftPattern: "ग्", RightPattern: "स्", Result: "क्स्", Priority: 5,
			Description: "g + s → ks (devoicing)"},

		// Nati
		{ID: "SP17", Category: CategorySpecial, LeftPattern: "न्", RightPattern: "ष", Result: "ण्ष्", Priority: 6,
			Description: "Nati: n + ṣ → ṇṣ"},

		// Vedic meter preservation
		{ID: "SP18", Category: CategorySpecial, LeftPattern: "े", RightPattern: "अ", Result: "े अ", Priority: 3, VedicOnly: true,
			Description: "Meter preservation: e + a"},
		{ID: "SP19", Category: CategorySpecial, LeftPattern: "ो", RightPattern: "अ", Result: "ो अ", Priority: 3, VedicOnly: true,
			Description: "Meter preservation: o + a"},

		// Prefix junctions
		{ID: "SP20", Category: CategorySpecial, LeftPattern: "उत्", RightPattern: "आ", Result: "उदा", Priority: 6,
			Description: "ut + ā → udā (prefix)", Examples: []Example{{"उत्", "आहरति", "उदाहरति"}}},
		{ID: "SP21", Category: CategorySpecial, LeftPattern: "सम्", RightPattern: "आ", Result: "समा", Priority: 7,
			Description: "sam + ā → samā (prefix)", Examples: []Example{{"सम्", "आगच्छति", "समागच्छति"}}},

		// Pada-final stability
		{ID: "SP22", Category: CategorySpecial, LeftPattern: "त्", RightPattern: "", Result: "त्", Priority: 5,
			Description: "Pada-final t (no change)"},
		{ID: "SP23", Category: CategorySpecial, LeftPattern: "न्", RightPattern: "", Result: "न्", Priority: 5,
			Description: "Pada-final n (no change)"},

		// Rare and archaic
		{ID: "SP24", Category: CategorySpecial, LeftPattern: "ऋ", RightPattern: "आ", Result: "रा", Priority: 3, VedicOnly: true,
			Description: "Vedic ṛ + ā → rā"},
		{ID: "SP25", Category: CategorySpecial, LeftPattern: "ऌ", RightPattern: "अ", Result: "ल", Priority: 1, VedicOnly: true,
			Description: "Vedic ḷ sandhi"},

		// Vedic gemination
		{ID: "SP26", Category: CategorySpecial, LeftPattern: "स्", RightPattern: "स्", Result: "स्स्", Priority: 4, VedicOnly: true,
			Description: "Vedic ss cluster"},
		{ID: "SP27", Category: CategorySpecial, LeftPattern: "द्", RightPattern: "द्", Result: "द्द्", Priority: 4, VedicOnly: true,
			Description: "Vedic dd cluster"},
	}
}
