package engine

// defaultLexicon is the built-in Hausa-English term base. Weighted towards
// greetings, health and field-work vocabulary.
var defaultLexicon = []Entry{
	{English: "hello", Hausa: "sannu"},
	{English: "welcome", Hausa: "barka"},
	{English: "good morning", Hausa: "barka da safiya"},
	{English: "good afternoon", Hausa: "barka da rana"},
	{English: "good evening", Hausa: "barka da yamma"},
	{English: "goodbye", Hausa: "sai an jima"},
	{English: "how are you", Hausa: "yaya kake"},
	{English: "i am fine", Hausa: "lafiya lau"},
	{English: "thank you", Hausa: "na gode"},
	{English: "please", Hausa: "don allah"},
	{English: "yes", Hausa: "eh"},
	{English: "no", Hausa: "a'a"},
	{English: "what is your name", Hausa: "yaya sunanka"},
	{English: "name", Hausa: "suna"},
	{English: "water", Hausa: "ruwa"},
	{English: "clean water", Hausa: "ruwa mai tsabta"},
	{English: "food", Hausa: "abinci"},
	{English: "house", Hausa: "gida"},
	{English: "market", Hausa: "kasuwa"},
	{English: "money", Hausa: "kudi"},
	{English: "school", Hausa: "makaranta"},
	{English: "teacher", Hausa: "malami"},
	{English: "book", Hausa: "littafi"},
	{English: "doctor", Hausa: "likita"},
	{English: "hospital", Hausa: "asibiti"},
	{English: "medicine", Hausa: "magani"},
	{English: "health", Hausa: "lafiya"},
	{English: "vaccination", Hausa: "rigakafi"},
	{English: "emergency", Hausa: "gaggawa"},
	{English: "help", Hausa: "taimako"},
	{English: "child", Hausa: "yaro"},
	{English: "children", Hausa: "yara"},
	{English: "woman", Hausa: "mace"},
	{English: "man", Hausa: "namiji"},
	{English: "person", Hausa: "mutum"},
	{English: "family", Hausa: "iyali"},
	{English: "father", Hausa: "uba"},
	{English: "mother", Hausa: "uwa"},
	{English: "friend", Hausa: "aboki"},
	{English: "work", Hausa: "aiki"},
	{English: "road", Hausa: "hanya"},
	{English: "rain", Hausa: "ruwan sama"},
	{English: "today", Hausa: "yau"},
	{English: "tomorrow", Hausa: "gobe"},
	{English: "yesterday", Hausa: "jiya"},
	{English: "come", Hausa: "zo"},
	{English: "go", Hausa: "tafi"},
	{English: "eat", Hausa: "ci"},
	{English: "drink", Hausa: "sha"},
	{English: "sleep", Hausa: "barci"},
	{English: "big", Hausa: "babba"},
	{English: "small", Hausa: "karami"},
	{English: "love", Hausa: "soyayya"},
	{English: "peace", Hausa: "zaman lafiya"},
}
