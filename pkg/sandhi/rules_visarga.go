package sandhi

// visargaRules covers visarga before vowels and consonants, including the
// avagraha-producing aḥ + a → o' and the r-replacement forms.
func visargaRules() []Rule {
	return []Rule{
		// Visarga before vowels
		{ID: "VIS01", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "अ", Result: "ओऽ", Priority: 10, Sutra: "6.1.114",
			Description: "aḥ + a → o' (avagraha)", Examples: []Example{{"रामः", "अत्र", "रामोऽत्र"}}},
		{ID: "VIS02", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "आ", Result: "ओ", Priority: 9,
			Description: "aḥ + ā → o", Examples: []Example{{"रामः", "आगच्छति", "रामोगच्छति"}}},
		{ID: "VIS03", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "इ", Result: "ओ", Priority: 8,
			Description: "aḥ + i → o", Examples: []Example{{"रामः", "इच्छति", "रामोच्छति"}}},
		{ID: "VIS04", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ई", Result: "ओ", Priority: 8,
			Description: "aḥ + ī → o", Examples: []Example{{"रामः", "ईक्षते", "रामोक्षते"}}},
		{ID: "VIS05", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "उ", Result: "ओ", Priority: 8,
			Description: "aḥ + u → o", Examples: []Example{{"रामः", "उवाच", "रामोवाच"}}},
		{ID: "VIS06", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ऊ", Result: "ओ", Priority: 7,
			Description: "aḥ + ū → o", Examples: []Example{{"रामः", "ऊर्ध्वम्", "रामोर्ध्वम्"}}},
		{ID: "VIS07", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ए", Result: "ओ", Priority: 7,
			Description: "aḥ + e → o", Examples: []Example{{"रामः", "एति", "रामोति"}}},
		{ID: "VIS08", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ओ", Result: "ओ", Priority: 6,
			Description: "aḥ + o → o", Examples: []Example{{"रामः", "ओम्", "रामोम्"}}},

		// Visarga before consonants
		{ID: "VIS09", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "क", Result: "अःक", Priority: 9,
			Description: "aḥ + k → aḥ (unchanged)", Examples: []Example{{"रामः", "करोति", "रामःकरोति"}}},
		{ID: "VIS10", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "प", Result: "अःप", Priority: 9,
			Description: "aḥ + p → aḥ (unchanged)", Examples: []Example{{"रामः", "पश्यति", "रामःपश्यति"}}},
		{ID: "VIS11", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "च", Result: "अश्च", Priority: 7, Sutra: "8.3.36",
			Description: "aḥ + c → aś", Examples: []Example{{"रामः", "च", "रामश्च"}}},
		{ID: "VIS12", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ट", Result: "अष्ट", Priority: 7,
			Description: "aḥ + ṭ → aṣ", Examples: []Example{{"रामः", "टङ्कः", "रामष्टङ्कः"}}},
		{ID: "VIS13", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "त", Result: "अस्त", Priority: 8, Sutra: "8.3.37",
			Description: "aḥ + t → as", Examples: []Example{{"रामः", "तत्र", "रामस्तत्र"}}},

		// Visarga replaced by r
		{ID: "VIS14", Category: CategoryVisarga, LeftPattern: "ः", RightPattern: "र", Result: "र", Priority: 7,
			Description: "ḥ + r → r (non-aḥ)", Examples: []Example{{"पुनः", "रमते", "पुनरमते"}}},
		{ID: "VIS15", Category: CategoryVisarga, LeftPattern: "ः", RightPattern: "अ", Result: "र", Priority: 7,
			Description: "ḥ (non-aḥ) + vowel → r", Examples: []Example{{"पुनः", "अपि", "पुनरपि"}}},
		{ID: "VIS16", Category: CategoryVisarga, LeftPattern: "इः", RightPattern: "अ", Result: "इर", Priority: 6,
			Description: "iḥ + vowel → ir", Examples: []Example{{"हरिः", "अत्र", "हरिरत्र"}}},
		{ID: "VIS17", Category: CategoryVisarga, LeftPattern: "उः", RightPattern: "अ", Result: "उर", Priority: 6,
			Description: "uḥ + vowel → ur", Examples: []Example{{"गुरुः", "अत्र", "गुरुरत्र"}}},

		// Retention and deletion before sibilants
		{ID: "VIS18", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "स", Result: "अःस", Priority: 7,
			Description: "aḥ + s → aḥs", Examples: []Example{{"रामः", "सर्वः", "रामःसर्वः"}}},
		{ID: "VIS19", Category: CategoryVisarga, LeftPattern: "ः", RightPattern: "स", Result: "स", Priority: 5,
			Description: "ḥ + s → deletion (s remains)", Examples: []Example{{"अतः", "स्यात्", "अतस्यात्"}}},
		{ID: "VIS20", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ह", Result: "ओह", Priority: 6,
			Description: "aḥ + h → oh", Examples: []Example{{"यतः", "हि", "यतोहि"}}},
	}
}
