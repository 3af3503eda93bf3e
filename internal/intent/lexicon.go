package intent

// Default lexicons for the Fashion Shop vocabulary. All three lists are
// injectable so tests and future localizations can swap them out.

func DefaultTriggers() []string {
	return []string{
		"find product",
		"want to buy",
		"looking for",
		"suggest",
		"recommend",
		"purchase",
		"t-shirt",
		"tshirt",
		"shirt",
		"hoodie",
		"sweater",
		"polo",
		"jeans",
		"shorts",
		"kaki",
		"mua",
		"áo thun",
		"áo sơ mi",
		"áo khoác",
		"quần short",
		"quần kaki",
		"tư vấn",
		"sản phẩm",
	}
}

func DefaultStopWords() []string {
	return []string{
		// pronouns
		"i", "you", "me", "my", "we", "it", "they",
		// connectives and fillers
		"a", "an", "the", "to", "for", "of", "in", "on", "at", "and", "or",
		"is", "are", "am", "do", "does", "can", "could", "would", "should",
		"want", "need", "like", "buy", "find", "show", "get", "some", "any",
		// politeness
		"please", "help", "hi", "hello", "thanks", "thank",
		// Vietnamese equivalents
		"tôi", "bạn", "mình", "em", "anh", "chị",
		"muốn", "cần", "mua", "tìm", "cho", "giúp",
		"xin", "chào", "cảm", "ơn", "nhé", "ạ",
		"và", "với", "của", "có", "không", "được", "về",
		"cái", "chiếc", "đồ", "một",
	}
}

func DefaultStylePhrases() []string {
	return []string{
		"casual chic",
		"smart casual",
		"old money",
		"street style",
		"vintage style",
		"minimalist style",
		"quiet luxury",
	}
}
