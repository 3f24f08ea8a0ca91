package sandhi

// vowelRules covers savarna-dirgha, guna, vriddhi and yan combinations.
func vowelRules() []Rule {
	return []Rule{
		// Savarna dirgha (similar vowel lengthening)
		{ID: "VS01", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "अ", Result: "आ", Priority: 10, Sutra: "6.1.101",
			Description: "a + a → ā", Examples: []Example{{"रम", "अति", "रमाति"}}},
		{ID: "VS02", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "अ", Result: "आ", Priority: 10, Sutra: "6.1.101",
			Description: "ā + a → ā", Examples: []Example{{"रमा", "अति", "रमाति"}}},
		{ID: "VS03", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "आ", Result: "आ", Priority: 10, Sutra: "6.1.101",
			Description: "a + ā → ā", Examples: []Example{{"तत्र", "आगच्छति", "तत्रागच्छति"}}},
		{ID: "VS04", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "आ", Result: "आ", Priority: 9, Sutra: "6.1.101",
			Description: "ā + ā → ā", Examples: []Example{{"रमा", "आगच्छति", "रमागच्छति"}}},
		{ID: "VS05", Category: CategoryVowel, LeftPattern: "इ", RightPattern: "इ", Result: "ई", Priority: 9, Sutra: "6.1.101",
			Description: "i + i → ī", Examples: []Example{{"कवि", "इन्द्रः", "कवीन्द्रः"}}},
		{ID: "VS06", Category: CategoryVowel, LeftPattern: "ई", RightPattern: "इ", Result: "ई", Priority: 9, Sutra: "6.1.101",
			Description: "ī + i → ī", Examples: []Example{{"नदी", "इव", "नदीव"}}},
		{ID: "VS07", Category: CategoryVowel, LeftPattern: "उ", RightPattern: "उ", Result: "ऊ", Priority: 8, Sutra: "6.1.101",
			Description: "u + u → ū", Examples: []Example{{"साधु", "उक्तिः", "साधूक्तिः"}}},
		{ID: "VS08", Category: CategoryVowel, LeftPattern: "ऊ", RightPattern: "उ", Result: "ऊ", Priority: 8, Sutra: "6.1.101",
			Description: "ū + u → ū", Examples: []Example{{"वधू", "उक्तिः", "वधूक्तिः"}}},

		// Guna
		{ID: "VS09", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "इ", Result: "ए", Priority: 10, Sutra: "6.1.87",
			Description: "a + i → e (guna)", Examples: []Example{{"रम", "इति", "रमेति"}}},
		{ID: "VS10", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ई", Result: "ए", Priority: 10, Sutra: "6.1.87",
			Description: "a + ī → e (guna)", Examples: []Example{{"परम", "ईश्वरः", "परमेश्वरः"}}},
		{ID: "VS11", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "इ", Result: "ए", Priority: 9, Sutra: "6.1.87",
			Description: "ā + i → e (guna)", Examples: []Example{{"रमा", "इति", "रमेति"}}},
		{ID: "VS12", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ई", Result: "ए", Priority: 9, Sutra: "6.1.87",
			Description: "ā + ī → e (guna)", Examples: []Example{{"महा", "ईशः", "महेशः"}}},
		{ID: "VS13", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "उ", Result: "ओ", Priority: 10, Sutra: "6.1.87",
			Description: "a + u → o (guna)", Examples: []Example{{"सुर", "उत्तमः", "सुरोत्तमः"}}},
		{ID: "VS14", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ऊ", Result: "ओ", Priority: 9, Sutra: "6.1.87",
			Description: "a + ū → o (guna)", Examples: []Example{{"परम", "ऊर्जितः", "परमोर्जितः"}}},
		{ID: "VS15", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "उ", Result: "ओ", Priority: 9, Sutra: "6.1.87",
			Description: "ā + u → o (guna)", Examples: []Example{{"महा", "उदयः", "महोदयः"}}},
		{ID: "VS16", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ऊ", Result: "ओ", Priority: 9, Sutra: "6.1.87",
			Description: "ā + ū → o (guna)", Examples: []Example{{"महा", "ऊर्जः", "महोर्जः"}}},
		{ID: "VS17", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ऋ", Result: "अर्", Priority: 8, Sutra: "6.1.87",
			Description: "a + ṛ → ar (guna)", Examples: []Example{{"देव", "ऋषिः", "देवर्षिः"}}},
		{ID: "VS18", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ऋ", Result: "अर्", Priority: 8, Sutra: "6.1.87",
			Description: "ā + ṛ → ar (guna)", Examples: []Example{{"महा", "ऋषिः", "महर्षिः"}}},

		// Vriddhi
		{ID: "VS19", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ए", Result: "ऐ", Priority: 8, Sutra: "6.1.88",
			Description: "a + e → ai (vriddhi)", Examples: []Example{{"अद्य", "एव", "अद्यैव"}}},
		{ID: "VS20", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ए", Result: "ऐ", Priority: 7, Sutra: "6.1.88",
			Description: "ā + e → ai (vriddhi)", Examples: []Example{{"सदा", "एव", "सदैव"}}},
		{ID: "VS21", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ऐ", Result: "ऐ", Priority: 7, Sutra: "6.1.88",
			Description: "a + ai → ai (vriddhi)", Examples: []Example{{"तत्र", "ऐश्वर्यम्", "तत्रैश्वर्यम्"}}},
		{ID: "VS22", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ओ", Result: "औ", Priority: 8, Sutra: "6.1.88",
			Description: "a + o → au (vriddhi)", Examples: []Example{{"वन", "ओषधिः", "वनौषधिः"}}},
		{ID: "VS23", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ओ", Result: "औ", Priority: 7, Sutra: "6.1.88",
			Description: "ā + o → au (vriddhi)", Examples: []Example{{"महा", "ओजः", "महौजः"}}},
		{ID: "VS24", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "औ", Result: "औ", Priority: 7, Sutra: "6.1.88",
			Description: "a + au → au (vriddhi)", Examples: []Example{{"परम", "औषधम्", "परमौषधम्"}}},

		// Yan (semivowel substitution)
		{ID: "VS25", Category: CategoryVowel, LeftPattern: "इ", RightPattern: "अ", Result: "य", Priority: 10, Sutra: "6.1.77",
			Description: "i + a → ya (yan)", Examples: []Example{{"प्रति", "अर्थः", "प्रत्यर्थः"}}},
		{ID: "VS26", Category: CategoryVowel, LeftPattern: "ई", RightPattern: "अ", Result: "य", Priority: 9, Sutra: "6.1.77",
			Description: "ī + a → ya (yan)", Examples: []Example{{"नदी", "अत्र", "नद्यत्र"}}},
		{ID: "VS27", Category: CategoryVowel, LeftPattern: "उ", RightPattern: "अ", Result: "व", Priority: 9, Sutra: "6.1.77",
			Description: "u + a → va (yan)", Examples: []Example{{"मधु", "अत्र", "मध्वत्र"}}},
		{ID: "VS28", Category: CategoryVowel, LeftPattern: "ऊ", RightPattern: "अ", Result: "व", Priority: 8, Sutra: "6.1.77",
			Description: "ū + a → va (yan)", Examples: []Example{{"वधू", "अत्र", "वध्वत्र"}}},
		{ID: "VS29", Category: CategoryVowel, LeftPattern: "ऋ", RightPattern: "अ", Result: "र", Priority: 7, Sutra: "6.1.77",
			Description: "ṛ + a → ra (yan)", Examples: []Example{{"पितृ", "अर्थः", "पित्रर्थः"}}},
		{ID: "VS30", Category: CategoryVowel, LeftPattern: "इ", RightPattern: "आ", Result: "या", Priority: 9, Sutra: "6.1.77",
			Description: "i + ā → yā", Examples: []Example{{"प्रति", "आह", "प्रत्याह"}}},
		{ID: "VS31", Category: CategoryVowel, LeftPattern: "इ", RightPattern: "उ", Result: "यु", Priority: 8, Sutra: "6.1.77",
			Description: "i + u → yu", Examples: []Example{{"अति", "उत्तमः", "अत्युत्तमः"}}},
		{ID: "VS32", Category: CategoryVowel, LeftPattern: "उ", RightPattern: "आ", Result: "वा", Priority: 8, Sutra: "6.1.77",
			Description: "u + ā → vā", Examples: []Example{{"सु", "आगतः", "स्वागतः"}}},
		{ID: "VS33", Category: CategoryVowel, LeftPattern: "उ", RightPattern: "इ", Result: "वि", Priority: 7, Sutra: "6.1.77",
			Description: "u + i → vi", Examples: []Example{{"अनु", "इष्टः", "अन्विष्टः"}}},
	}
}
