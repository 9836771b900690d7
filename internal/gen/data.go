package gen

import "github.com/salihsuliman/queue-up/internal/model"

// Rank ladders per game, ordered from lowest to highest.
var gameRanks = map[model.GameID][]string{
	"valorant": {
		"Iron", "Bronze", "Silver", "Gold", "Platinum",
		"Diamond", "Ascendant", "Immortal", "Radiant",
	},
	"league-of-legends": {
		"Iron", "Bronze", "Silver", "Gold", "Platinum",
		"Diamond", "Master", "Grandmaster", "Challenger",
	},
	"apex-legends": {
		"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Master", "Predator",
	},
	"cs2": {
		"Silver", "Gold Nova", "MG", "DMG", "LEM", "SMFC", "Global Elite",
	},
	"overwatch-2": {
		"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Master", "Grandmaster",
	},
	"fortnite": {
		"Open League", "Bronze", "Silver", "Gold", "Platinum",
		"Diamond", "Elite", "Champion", "Unreal",
	},
	"minecraft": {
		"Novice", "Apprentice", "Journeyman", "Expert", "Master",
	},
	"rocket-league": {
		"Bronze", "Silver", "Gold", "Platinum", "Diamond",
		"Champion", "Grand Champion", "Supersonic Legend",
	},
	"warzone": {
		"Bronze", "Silver", "Gold", "Platinum", "Diamond",
		"Crimson", "Iridescent", "Top 250",
	},
}

// Playstyle vocabularies per game.
var gamePlaystyles = map[model.GameID][]string{
	"valorant": {
		"IGL", "Entry Fragger", "Support", "Lurker", "AWP",
		"Controller", "Initiator", "Duelist", "Sentinel",
	},
	"league-of-legends": {
		"Top Lane", "Jungle", "Mid Lane", "ADC", "Support",
		"Tank", "Assassin", "Mage", "Marksman",
	},
	"apex-legends": {
		"Assault", "Support", "Recon", "Controller",
		"Aggressive", "Defensive", "Flanker", "IGL",
	},
	"cs2": {
		"Entry Fragger", "Support", "AWP", "IGL",
		"Lurker", "Rifler", "Clutch", "Utility",
	},
	"overwatch-2": {
		"Tank", "DPS", "Support", "Flanker",
		"Main Tank", "Off Tank", "Hitscan", "Projectile",
	},
	"fortnite": {
		"Aggressive", "Builder", "Editor", "IGL",
		"Support", "Fragger", "Zone Player",
	},
	"minecraft": {
		"Builder", "PvP", "Redstone", "Explorer", "Farmer", "Miner", "Creative",
	},
	"rocket-league": {
		"Striker", "Goalkeeper", "Playmaker", "Defender",
		"Aerial", "Ground Play", "Rotation",
	},
	"warzone": {
		"Sniper", "Assault", "Support", "IGL", "Flanker", "Objective", "Loadout",
	},
}

var avatars = []string{
	"🎯", "⚡", "🔥", "💀", "🎮", "👑", "💎", "🌟", "🚀", "🛡️",
	"🗡️", "🏹", "💣", "🌀", "👻", "🐺", "🦅", "🌸", "💨", "🔧",
}

// Late-night availability slots, quarter-hour spaced.
var availabilityTimes = []string{
	"11:00 PM", "11:15 PM", "11:30 PM", "11:45 PM",
	"12:00 AM", "12:15 AM", "12:30 AM", "12:45 AM",
	"1:00 AM", "1:15 AM", "1:30 AM", "1:45 AM",
	"2:00 AM", "2:15 AM", "2:30 AM", "2:45 AM",
}

var locations = []string{
	"Los Angeles, CA", "New York, NY", "London, UK", "Tokyo, Japan",
	"Berlin, Germany", "Toronto, ON", "Sydney, Australia", "Seoul, South Korea",
	"São Paulo, Brazil", "Mexico City, Mexico", "Paris, France",
	"Amsterdam, Netherlands", "Stockholm, Sweden", "Singapore", "Dubai, UAE",
	"Vancouver, BC", "Chicago, IL", "Miami, FL", "Seattle, WA", "Austin, TX",
	"Boston, MA", "San Francisco, CA", "Montreal, QC", "Melbourne, Australia",
	"Manchester, UK", "Barcelona, Spain", "Rome, Italy", "Oslo, Norway",
	"Copenhagen, Denmark", "Helsinki, Finland", "Zurich, Switzerland",
	"Vienna, Austria", "Prague, Czech Republic", "Warsaw, Poland",
	"Budapest, Hungary", "Taipei, Taiwan", "Hong Kong", "Mumbai, India",
	"Bangkok, Thailand", "Jakarta, Indonesia",
}

var professions = []string{
	"Software Engineer", "Student", "Graphic Designer", "Marketing Manager",
	"Data Analyst", "Teacher", "Content Creator", "Sales Representative",
	"Product Manager", "Freelancer", "Accountant", "Web Developer", "Nurse",
	"Consultant", "Engineer", "Artist", "Photographer", "Writer",
	"Entrepreneur", "Research Scientist", "UX Designer", "Project Manager",
	"Financial Analyst", "Social Media Manager", "Customer Support",
	"Game Developer", "Streamer", "Video Editor", "3D Artist", "Translator",
	"Musician", "Chef", "Fitness Trainer", "Therapist", "Lawyer", "Doctor",
	"Pharmacist", "Real Estate Agent", "Insurance Agent", "Bank Teller",
}

// ageWeights biases generated ages towards the 18-28 band. Index 0
// corresponds to the minimum age.
var ageWeights = []int{
	1, 2, 4, 6, 8, 10, 12, 14, 16, 18, 16, 14, 12, 10, 8, 6, 4, 3, 2, 1,
}
