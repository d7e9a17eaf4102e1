package trivia

// SeedQuestions returns the built-in Seinfeld catalog. Each call builds a
// fresh slice, so callers may keep it without copying.
func SeedQuestions() []Question {
	var qs []Question
	qs = append(qs, easyQuestions()...)
	qs = append(qs, mediumQuestions()...)
	qs = append(qs, hardQuestions()...)
	qs = append(qs, expertQuestions()...)
	return qs
}

func q(d Difficulty, prompt string, correct int, a, b, c, e string) Question {
	return Question{
		Prompt:       prompt,
		Options:      [OptionCount]string{a, b, c, e},
		CorrectIndex: correct,
		Difficulty:   d,
	}
}

func easyQuestions() []Question {
	d := DifficultyEasy
	return []Question{
		q(d, "What is Jerry's last name?", 0,
			"Seinfeld", "Costanza", "Kramer", "Benes"),
		q(d, "What is the name of Jerry's neighbor across the hall?", 2,
			"George", "Elaine", "Kramer", "Newman"),
		q(d, "What does Jerry do for a living?", 1,
			"Writer", "Comedian", "Doctor", "Architect"),
		q(d, "What is George's last name?", 1,
			"Kramer", "Costanza", "Newman", "Ross"),
		q(d, "What is Elaine's last name?", 0,
			"Benes", "Puddy", "Ross", "Peterman"),
		q(d, "What is the name of the diner where the gang often meets?", 1,
			"Central Perk", "Monk's Cafe", "The Coffee Shop", "Tom's Restaurant"),
		q(d, "What is Newman's job?", 0,
			"Mailman", "Police Officer", "Accountant", "Chef"),
		q(d, "What city does Seinfeld take place in?", 2,
			"Los Angeles", "Chicago", "New York", "Boston"),
	}
}

func mediumQuestions() []Question {
	d := DifficultyMedium
	return []Question{
		q(d, "What is the name of George's boss at the New York Yankees?", 1,
			"Mr. Wilhelm", "Mr. Steinbrenner", "Mr. Ross", "Mr. Kruger"),
		q(d, "What does Kramer's first name start with?", 0,
			"K", "C", "G", "M"),
		q(d, "What is the name of Elaine's on-and-off boyfriend who is known for his deep voice?", 0,
			"David Puddy", "Jerry Seinfeld", "Kenny Rogers", "J. Peterman"),
		q(d, "What food item does Kramer slide across Jerry's counter?", 3,
			"Bagel", "Junior Mint", "Big Salad", "Mackinaw Peaches"),
		q(d, "What is the name of the soup restaurant where the 'Soup Nazi' works?", 1,
			"Soup Kitchen", "The Original Soup Man", "Soup Plus", "The Soup Stand"),
		q(d, "What does George claim to be an architect of?", 3,
			"The Statue of Liberty", "The Guggenheim", "Lincoln Center", "The addition to the Guggenheim"),
		q(d, "What is the name of Jerry's nemesis mailman?", 0,
			"Newman", "Newbert", "Neuman", "Newton"),
		q(d, "What magazine does Elaine work for?", 0,
			"Pendant Publishing", "J. Peterman Catalog", "Vanity Fair", "The New Yorker"),
		q(d, "What does Kramer do with his salad?", 1,
			"Throws it away", "Makes it bigger", "Eats it", "Gives it to Newman"),
		q(d, "What is George's middle name?", 0,
			"Louis", "Francis", "Michael", "Anthony"),
	}
}

func hardQuestions() []Question {
	d := DifficultyHard
	return []Question{
		q(d, "What is the name of the low-fat frozen yogurt shop?", 0,
			"I Can't Believe It's Yogurt", "TCBY", "White's Yogurt", "Columbo Yogurt"),
		q(d, "What is the name of George's father?", 0,
			"Frank Costanza", "Morty Costanza", "Lou Costanza", "Sam Costanza"),
		q(d, "What holiday does Frank Costanza create?", 0,
			"Festivus", "Frankmas", "Costanza Day", "Winter Solstice"),
		q(d, "What is Kramer's first name?", 0,
			"Cosmo", "Calvin", "Chester", "Clarence"),
		q(d, "What does J. Peterman call Elaine?", 0,
			"Elaine", "Miss Benes", "My right hand", "Urban Sombrero"),
		q(d, "What is the name of the Japanese businessman who wants to buy Kramer's stories?", 0,
			"Mr. Yamaguchi", "Mr. Tanaka", "Mr. Yamamoto", "Mr. Watanabe"),
		q(d, "What does George do when he thinks his boss is trying to fire him?", 0,
			"Shows up anyway", "Quits", "Files a complaint", "Goes on vacation"),
		q(d, "What is the name of Jerry's father?", 0,
			"Morty Seinfeld", "Martin Seinfeld", "Morris Seinfeld", "Max Seinfeld"),
		q(d, "What does Newman call Kramer?", 0,
			"Kramer", "K-man", "Cosmo", "My friend"),
		q(d, "What is the name of Elaine's father?", 0,
			"Alton Benes", "Arthur Benes", "Albert Benes", "Andrew Benes"),
	}
}

func expertQuestions() []Question {
	d := DifficultyExpert
	return []Question{
		q(d, "What is the name of the restaurant where Jerry gets food poisoning?", 1,
			"Kenny Roger's Roasters", "Mendy's", "The Big Salad", "Reggie's"),
		q(d, "What is the name of George's alias when he pretends to be a tourist?", 0,
			"Art Vandelay", "Buck Naked", "H.E. Pennypacker", "Dr. Martin van Nostrand"),
		q(d, "What is Kramer's mother's name?", 0,
			"Babs Kramer", "Betty Kramer", "Barbara Kramer", "Bonnie Kramer"),
		q(d, "What does George's mother call him when she's angry?", 0,
			"Georgie", "You little weasel", "George Louis", "Serenity now"),
		q(d, "What is the name of the woman Jerry dates who has 'man hands'?", 0,
			"Gillian", "Gail", "Grace", "Gloria"),
		q(d, "What does Frank Costanza sell during his brief business venture?", 1,
			"Computers", "Bras for men (The Bro)", "Cars", "Insurance"),
		q(d, "What is the name of Kramer's friend who owns the vintage clothing store?", 2,
			"Morty", "Mickey", "Bob Sacamano", "Jay Riemenschneider"),
		q(d, "What does Elaine say when she doesn't want to have a baby?", 2,
			"Maybe the dingo ate your baby", "I don't want a baby", "The sponge", "I'm not ready"),
		q(d, "What is the name of the street where Jerry lives?", 0,
			"West 81st Street", "West 83rd Street", "West 85th Street", "West 87th Street"),
		q(d, "What does George do to get revenge on his boss?", 1,
			"Puts Mickey Finns in his drink", "Slips him a mickey", "Drugs his food", "Puts chloral hydrate in his drink"),
		q(d, "What is Puddy's favorite thing to say?", 0,
			"Yeah, that's right", "High five!", "Giddy up", "That's gold, Jerry!"),
		q(d, "What does Kramer name his chicken?", 0,
			"Little Jerry", "Big Jerry", "Kramer Jr.", "Newman Jr."),
	}
}
