package sandhi

// consonantRules covers voicing, anusvara substitution for final m, and the
// common gemination and cluster assimilations.
func consonantRules() []Rule {
	return []Rule{
		// Jhal-jash voicing and assimilation
		{ID: "CS01", Category: CategoryConsonant, LeftPattern: "क्", RightPattern: "ग", Result: "ग्ग", Priority: 8,
			Description: "k + g → gg", Examples: []Example{{"वाक्", "गतः", "वाग्गतः"}}},
		{ID: "CS02", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "ज", Result: "ज्ज", Priority: 8,
			Description: "t + j → jj", Examples: []Example{{"तत्", "जलम्", "तज्जलम्"}}},
		{ID: "CS03", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "च", Result: "च्च", Priority: 9, Sutra: "8.4.40",
			Description: "t + c → cc", Examples: []Example{{"तत्", "च", "तच्च"}}},
		{ID: "CS04", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "श", Result: "च्छ", Priority: 8,
			Description: "t + ś → cch", Examples: []Example{{"तत्", "शास्त्रम्", "तच्छास्त्रम्"}}},
		{ID: "CS05", Category: CategoryConsonant, LeftPattern: "द्", RightPattern: "ध", Result: "द्ध", Priority: 7,
			Description: "d + dh → ddh", Examples: []Example{{"तद्", "धनम्", "तद्धनम्"}}},
		{ID: "CS06", Category: CategoryConsonant, LeftPattern: "र्", RightPattern: "न", Result: "र्ण", Priority: 9, Sutra: "8.4.1",
			Description: "r + n → rṇ", Examples: []Example{{"पुनर्", "नमति", "पुनर्णमति"}}},
		{ID: "CS07", Category: CategoryConsonant, LeftPattern: "ष्", RightPattern: "न", Result: "ष्ण", Priority: 8,
			Description: "ṣ + n → ṣṇ", Examples: []Example{{"विष्", "नाशः", "विष्णाशः"}}},

		// Final m → anusvara before every consonant class
		{ID: "CS08", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "क", Result: "ंक", Priority: 10, Sutra: "8.3.23",
			Description: "m + k → ṃk", Examples: []Example{{"तम्", "करोति", "तंकरोति"}}},
		{ID: "CS09", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ख", Result: "ंख", Priority: 9,
			Description: "m + kh → ṃkh", Examples: []Example{{"तम्", "खलः", "तंखलः"}}},
		{ID: "CS10", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ग", Result: "ंग", Priority: 9,
			Description: "m + g → ṃg", Examples: []Example{{"तम्", "गच्छति", "तंगच्छति"}}},
		{ID: "CS11", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "घ", Result: "ंघ", Priority: 8,
			Description: "m + gh → ṃgh", Examples: []Example{{"तम्", "घोषः", "तंघोषः"}}},
		{ID: "CS12", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "च", Result: "ंच", Priority: 10,
			Description: "m + c → ṃc", Examples: []Example{{"तम्", "च", "तंच"}}},
		{ID: "CS13", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "छ", Result: "ंछ", Priority: 8,
			Description: "m + ch → ṃch", Examples: []Example{{"तम्", "छन्दः", "तंछन्दः"}}},
		{ID: "CS14", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ज", Result: "ंज", Priority: 9,
			Description: "m + j → ṃj", Examples: []Example{{"तम्", "जयः", "तंजयः"}}},
		{ID: "CS15", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "झ", Result: "ंझ", Priority: 7,
			Description: "m + jh → ṃjh", Examples: []Example{{"तम्", "झटिति", "तंझटिति"}}},
		{ID: "CS16", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ट", Result: "ंट", Priority: 8,
			Description: "m + ṭ → ṃṭ", Examples: []Example{{"तम्", "टङ्कः", "तंटङ्कः"}}},
		{ID: "CS17", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ठ", Result: "ंठ", Priority: 7,
			Description: "m + ṭh → ṃṭh", Examples: []Example{{"तम्", "ठः", "तंठः"}}},
		{ID: "CS18", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ड", Result: "ंड", Priority: 7,
			Description: "m + ḍ → ṃḍ", Examples: []Example{{"तम्", "डमरुः", "तंडमरुः"}}},
		{ID: "CS19", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ढ", Result: "ंढ", Priority: 6,
			Description: "m + ḍh → ṃḍh", Examples: []Example{{"तम्", "ढौकसे", "तंढौकसे"}}},
		{ID: "CS20", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "त", Result: "ंत", Priority: 10,
			Description: "m + t → ṃt", Examples: []Example{{"तम्", "तु", "तंतु"}}},
		{ID: "CS21", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "थ", Result: "ंथ", Priority: 8,
			Description: "m + th → ṃth", Examples: []Example{{"तम्", "थः", "तंथः"}}},
		{ID: "CS22", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "द", Result: "ंद", Priority: 9,
			Description: "m + d → ṃd", Examples: []Example{{"तम्", "दत्तम्", "तंदत्तम्"}}},
		{ID: "CS23", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ध", Result: "ंध", Priority: 8,
			Description: "m + dh → ṃdh", Examples: []Example{{"तम्", "धर्मः", "तंधर्मः"}}},
		{ID: "CS24", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "न", Result: "ंन", Priority: 9,
			Description: "m + n → ṃn", Examples: []Example{{"तम्", "नयति", "तंनयति"}}},
		{ID: "CS25", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "प", Result: "ंप", Priority: 10,
			Description: "m + p → ṃp", Examples: []Example{{"तम्", "पश्यति", "तंपश्यति"}}},
		{ID: "CS26", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "फ", Result: "ंफ", Priority: 8,
			Description: "m + ph → ṃph", Examples: []Example{{"तम्", "फलम्", "तंफलम्"}}},
		{ID: "CS27", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ब", Result: "ंब", Priority: 9,
			Description: "m + b → ṃb", Examples: []Example{{"तम्", "ब्रूहि", "तंब्रूहि"}}},
		{ID: "CS28", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "भ", Result: "ंभ", Priority: 8,
			Description: "m + bh → ṃbh", Examples: []Example{{"तम्", "भवति", "तंभवति"}}},
		{ID: "CS29", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "य", Result: "ंय", Priority: 8,
			Description: "m + y → ṃy", Examples: []Example{{"तम्", "यति", "तंयति"}}},
		{ID: "CS30", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "र", Result: "ंर", Priority: 8,
			Description: "m + r → ṃr", Examples: []Example{{"तम्", "रामः", "तंरामः"}}},
		{ID: "CS31", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ल", Result: "ंल", Priority: 8,
			Description: "m + l → ṃl", Examples: []Example{{"तम्", "लोकः", "तंलोकः"}}},
		{ID: "CS32", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "व", Result: "ंव", Priority: 8,
			Description: "m + v → ṃv", Examples: []Example{{"तम्", "वदति", "तंवदति"}}},
		{ID: "CS33", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "श", Result: "ंश", Priority: 8,
			Description: "m + ś → ṃś", Examples: []Example{{"तम्", "शुभम्", "तंशुभम्"}}},
		{ID: "CS34", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ष", Result: "ंष", Priority: 8,
			Description: "m + ṣ → ṃṣ", Examples: []Example{{"तम्", "षड्", "तंषड्"}}},
		{ID: "CS35", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "स", Result: "ंस", Priority: 9,
			Description: "m + s → ṃs", Examples: []Example{{"तम्", "सत्यम्", "तंसत्यम्"}}},
		{ID: "CS36", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ह", Result: "ंह", Priority: 8,
			Description: "m + h → ṃh", Examples: []Example{{"तम्", "हि", "तंहि"}}},

		// Gemination, sibilant and dental clusters
		{ID: "CS37", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "ल", Result: "ल्ल", Priority: 7,
			Description: "t + l → ll", Examples: []Example{{"तत्", "लोकः", "तल्लोकः"}}},
		{ID: "CS38", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "ह", Result: "द्ध", Priority: 7, Sutra: "8.4.53",
			Description: "t + h → ddh", Examples: []Example{{"तत्", "हि", "तद्धि"}}},
		{ID: "CS39", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "त", Result: "त्त", Priority: 8,
			Description: "t + t → tt (gemination)", Examples: []Example{{"तत्", "तत्त्वम्", "तत्तत्त्वम्"}}},
		{ID: "CS40", Category: CategoryConsonant, LeftPattern: "क्", RightPattern: "क", Result: "क्क", Priority: 7,
			Description: "k + k → kk (gemination)", Examples: []Example{{"वाक्", "कर्ता", "वाक्कर्ता"}}},
		{ID: "CS41", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "ध", Result: "द्ध", Priority: 8,
			Description: "t + dh → ddh (voicing)", Examples: []Example{{"तत्", "धर्मः", "तद्धर्मः"}}},
		{ID: "CS42", Category: CategoryConsonant, LeftPattern: "क्", RightPattern: "घ", Result: "ग्घ", Priority: 7,
			Description: "k + gh → ggh", Examples: []Example{{"वाक्", "घोषः", "वाग्घोषः"}}},
		{ID: "CS43", Category: CategoryConsonant, LeftPattern: "स्", RightPattern: "त", Result: "स्त", Priority: 9,
			Description: "s + t → st", Examples: []Example{{"नमस्", "ते", "नमस्ते"}}},
		{ID: "CS44", Category: CategoryConsonant, LeftPattern: "स्", RightPattern: "क", Result: "स्क", Priority: 8,
			Description: "s + k → sk", Examples: []Example{{"नमस्", "कार", "नमस्कार"}}},
		{ID: "CS45", Category: CategoryConsonant, LeftPattern: "न्", RightPattern: "त", Result: "न्त", Priority: 9,
			Description: "n + t → nt", Examples: []Example{{"भवन्", "तु", "भवन्तु"}}},
		{ID: "CS46", Category: CategoryConsonant, LeftPattern: "न्", RightPattern: "द", Result: "न्द", Priority: 9,
			Description: "n + d → nd", Examples: []Example{{"तान्", "दृष्ट्वा", "तान्दृष्ट्वा"}}},
		{ID: "CS47", Category: CategoryConsonant, LeftPattern: "स्", RightPattern: "च", Result: "श्च", Priority: 7, Sutra: "8.4.44",
			Description: "s + c → śc (ṣṭutva)", Examples: []Example{{"नमस्", "चित्", "नमश्चित्"}}},
		{ID: "CS48", Category: CategoryConsonant, LeftPattern: "द्", RightPattern: "व", Result: "द्व", Priority: 7,
			Description: "d + v → dv", Examples: []Example{{"तद्", "वचः", "तद्वचः"}}},
		{ID: "CS49", Category: CategoryConsonant, LeftPattern: "द्", RightPattern: "य", Result: "द्य", Priority: 7,
			Description: "d + y → dy", Examples: []Example{{"तद्", "यदि", "तद्यदि"}}},
		{ID: "CS50", Category: CategoryConsonant, LeftPattern: "द्", RightPattern: "र", Result: "द्र", Priority: 7,
			Description: "d + r → dr", Examples: []Example{{"तद्", "राज्यम्", "तद्राज्यम्"}}},
	}
}
