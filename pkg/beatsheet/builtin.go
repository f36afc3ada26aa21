package beatsheet

// The built-in templates. The default sheet is the classic 15-beat
// structure; positions are deliberately non-uniform, with ties at 10%
// (Setup/Catalyst) and 80% (Dark Night of the Soul/Break into Three).
var defaultTemplate = Template{
	Name: DefaultTemplateName,
	Beats: []TemplateBeat{
		{Name: "Opening Image", Percentage: 0, Description: "A snapshot of the hero's world before the journey begins."},
		{Name: "Theme Stated", Percentage: 5, Description: "Someone states the lesson the hero will learn, usually in passing."},
		{Name: "Setup", Percentage: 10, Description: "Establish the hero's status quo and everything that needs fixing."},
		{Name: "Catalyst", Percentage: 10, Description: "The inciting incident that knocks the status quo off balance."},
		{Name: "Debate", Percentage: 15, Description: "The hero hesitates: should I go? Can I do this?"},
		{Name: "Break into Two", Percentage: 20, Description: "The hero chooses to act and enters the new world of Act II."},
		{Name: "B Story", Percentage: 22, Description: "A new relationship begins that carries the theme."},
		{Name: "Fun and Games", Percentage: 35, Description: "The promise of the premise; the hero explores the new world."},
		{Name: "Midpoint", Percentage: 50, Description: "A false victory or false defeat raises the stakes."},
		{Name: "Bad Guys Close In", Percentage: 65, Description: "External pressure mounts while internal doubts fester."},
		{Name: "All Is Lost", Percentage: 75, Description: "The lowest point; something or someone dies."},
		{Name: "Dark Night of the Soul", Percentage: 80, Description: "The hero wallows in defeat before finding the lesson."},
		{Name: "Break into Three", Percentage: 80, Description: "Armed with the theme, the hero chooses to try again."},
		{Name: "Finale", Percentage: 90, Description: "The hero proves the change by executing the new plan."},
		{Name: "Final Image", Percentage: 100, Description: "A mirror of the opening image showing how far we've come."},
	},
}

var genreTemplates = map[string]Template{
	"mystery": {
		Name: "mystery",
		Beats: []TemplateBeat{
			{Name: "Crime", Percentage: 0, Description: "The crime occurs, on or off the page."},
			{Name: "Investigator Hooked", Percentage: 10, Description: "The detective takes the case, for reasons personal or professional."},
			{Name: "First Clues", Percentage: 25, Description: "Early evidence and early misdirection."},
			{Name: "False Suspect", Percentage: 40, Description: "A plausible suspect who turns out to be wrong."},
			{Name: "Midpoint Twist", Percentage: 50, Description: "A revelation that reframes the case."},
			{Name: "Second Crime", Percentage: 60, Description: "The stakes rise; the culprit acts again."},
			{Name: "Dark Moment", Percentage: 75, Description: "The trail goes cold or the detective is discredited."},
			{Name: "Revelation", Percentage: 85, Description: "The detective assembles the true picture."},
			{Name: "Confrontation", Percentage: 95, Description: "Culprit unmasked and confronted."},
			{Name: "Resolution", Percentage: 100, Description: "Order restored, loose ends addressed."},
		},
	},
	"romance": {
		Name: "romance",
		Beats: []TemplateBeat{
			{Name: "Meet Cute", Percentage: 5, Description: "The leads meet, memorably."},
			{Name: "Attraction and Obstacle", Percentage: 15, Description: "Chemistry sparks; the reason they can't be together appears."},
			{Name: "First Connection", Percentage: 30, Description: "Guards begin to drop."},
			{Name: "Deepening Bond", Percentage: 45, Description: "Shared vulnerability; the relationship becomes real."},
			{Name: "Midpoint Commitment", Percentage: 50, Description: "An implicit or explicit promise between the leads."},
			{Name: "Breakup", Percentage: 75, Description: "The obstacle wins; the relationship collapses."},
			{Name: "Grand Gesture", Percentage: 90, Description: "One lead risks everything to repair the break."},
			{Name: "Happily Ever After", Percentage: 100, Description: "Reunion and resolution."},
		},
	},
	"thriller": {
		Name: "thriller",
		Beats: []TemplateBeat{
			{Name: "Ordinary World Under Threat", Percentage: 0, Description: "Normal life with a threat already in motion."},
			{Name: "Inciting Danger", Percentage: 10, Description: "The threat touches the protagonist directly."},
			{Name: "First Escalation", Percentage: 25, Description: "Fighting back makes things worse."},
			{Name: "Point of No Return", Percentage: 40, Description: "The protagonist can no longer walk away."},
			{Name: "Midpoint Reversal", Percentage: 50, Description: "What the protagonist believed about the threat is wrong."},
			{Name: "Tightening Net", Percentage: 65, Description: "Allies fall away; the antagonist closes in."},
			{Name: "Darkest Hour", Percentage: 80, Description: "The antagonist appears to have won."},
			{Name: "Final Confrontation", Percentage: 92, Description: "Protagonist and antagonist meet with everything at stake."},
			{Name: "Aftermath", Percentage: 100, Description: "The cost of survival is tallied."},
		},
	},
}
