package chatbot

// Fixed replies.
const (
	emptyMessageReply = "Please send a message."
	noHistoryReply    = "No chat history yet."

	greetingReply = "👋 Hello! I’m here to help you find services and locations in your area. " +
		"For a list of available commands, type help."

	helpReply = "You can try commands like:\n" +
		"- hospitals near <area>\n" +
		"- police near <area>\n" +
		"- atm near <area>\n" +
		"- pharmacy near <area>\n" +
		"- transport near <area>\n" +
		"- places near <area>\n" +
		"- top places\n" +
		"- all hospitals / all atms / all police etc.\n" +
		"- show history"

	fallbackReply = "Sorry, I didn't understand. Try commands like:\n" +
		"- hospitals near <area>\n" +
		"- police near <area>\n" +
		"- atm near <area>\n" +
		"- pharmacy near <area>\n" +
		"- transport near <area>\n" +
		"- places near <area>\n" +
		"- top places\n" +
		"- all hospitals / all atms / all pharmacies / all police / all transport\n" +
		"- show history"

	noRatedPlacesReply = "No places with reviews found."
	noPlacesReply      = "No places found."
)
