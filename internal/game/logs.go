package game

// DataLog is one purchasable lore entry read at the city gate.
type DataLog struct {
	Title string
	Body  string
}

// DataLogs are unlocked strictly in order; index equals purchase order.
var DataLogs = [5]DataLog{
	{
		Title: "Survey 7-A",
		Body: "Pre-collapse survey of the basin. Soil salinity beyond " +
			"reclamation thresholds across the entire grid. Recommend the " +
			"relay towers be stripped and the site struck from the charter. " +
			"Recommendation overruled, reason not recorded.",
	},
	{
		Title: "Gate Ledger, Year 12",
		Body: "Tokens in circulation: 4,112. The council votes again to peg " +
			"the token to water rations. The scavenger guild abstains. " +
			"Outside the wall, salvage yields are down a third from last " +
			"year. Nobody writes down why.",
	},
	{
		Title: "Storm Watch Bulletin",
		Body: "The wall sirens now track the pressure drop ahead of each " +
			"sandstorm. You will feel the wind pick up before the front " +
			"arrives. Do not try to outrun it. Kneel, cover your intake, " +
			"and wait. The storms always pass.",
	},
	{
		Title: "Workbench Manual, Annotated",
		Body: "Factory manual for the model-C field bench, margins dense " +
			"with a dead mechanic's handwriting. One note is underlined " +
			"twice: parts from the same assembly line forgive each other. " +
			"Match the make before you cannibalize.",
	},
	{
		Title: "Last Transmission",
		Body: "Fragment recovered from a relay east of the basin. \"...still " +
			"green past the ridge line. Tell them the maps are wrong. Tell " +
			"them there is a way through the...\" The rest is carrier noise.",
	},
}
