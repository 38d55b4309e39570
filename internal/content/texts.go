package content

// Fixed conversational texts. These are reproduced verbatim; the formatter
// never truncates or rewrites them. Some lines end with a trailing space,
// so the constants are built with explicit " \n" pieces to keep editors
// from stripping them.

// Mission is the project mission statement.
const Mission = "🌍 Steppe Pulse Mission:\n" +
	"We're pioneering a revolutionary intersection of blockchain technology and wildlife conservation. \n" +
	"Our mission is to transform digital assets into powerful conservation tools, connecting passionate global citizens with critical environmental challenges."

// Fallback is sent when no topic keyword matches the incoming text.
const Fallback = "🤖 I'm an intelligent bot for Steppe Pulse Wildlife Conservation. \n" +
	"I can help you with information about our mission, team, ecosystems, and NFT projects. \n" +
	"Try asking about our mission, team, ecosystems, or frequently asked questions!"

// Welcome is the /start greeting.
const Welcome = "🌍 Welcome to Steppe Pulse Conservation Bot! \n" +
	"\n" +
	"I'm your intelligent assistant for wildlife conservation and blockchain innovation. \n" +
	"What would you like to know about our mission, team, or conservation efforts?\n" +
	"\n" +
	"Quick Commands:\n" +
	"/mission - Learn about our vision\n" +
	"/team - Meet our founders\n" +
	"/ecosystems - Explore our conservation focus areas\n" +
	"/faq - Frequently Asked Questions"

// HealthBody is returned by the HTTP liveness endpoint.
const HealthBody = "Steppe Pulse Conservation Bot is running!"
