package oracle

// focusRange is one row of the event focus table; the ranges partition
// 1-100 contiguously.
type focusRange struct {
	min, max int
	value    string
}

var eventFocusTable = []focusRange{
	{1, 5, "Remote Event"},
	{6, 10, "Ambiguous Event"},
	{11, 20, "New NPC"},
	{21, 40, "NPC Action"},
	{41, 45, "NPC Negative"},
	{46, 50, "NPC Positive"},
	{51, 55, "Move Toward a Thread"},
	{56, 65, "Move Away From a Thread"},
	{66, 70, "Close a Thread"},
	{71, 80, "PC Negative"},
	{81, 85, "PC Positive"},
	{86, 100, "Current Context"},
}

// sceneAdjustmentTable is indexed by the chaos d10 roll minus one
var sceneAdjustmentTable = [10]string{
	"Remove A Character",
	"Add A Character",
	"Reduce/Remove An Activity",
	"Increase An Activity",
	"Remove An Object",
	"Add An Object",
	"Make 2 Adjustments",
	"Make 2 Adjustments",
	"Make 2 Adjustments",
	"Make 2 Adjustments",
}

var meaningActions1 = [100]string{
	"Abandon", "Accompany", "Activate", "Agree", "Ambush", "Arrive", "Assist", "Attack", "Attain", "Bargain",
	"Befriend", "Bestow", "Betray", "Block", "Break", "Carry", "Celebrate", "Change", "Close", "Combine",
	"Communicate", "Conceal", "Continue", "Control", "Create", "Deceive", "Decrease", "Defend", "Delay", "Deny",
	"Depart", "Deposit", "Destroy", "Dispute", "Disrupt", "Distrust", "Divide", "Drop", "Easy", "Energize",
	"Escape", "Expose", "Fail", "Fight", "Flee", "Free", "Guide", "Harm", "Heal", "Hinder",
	"Imitate", "Imprison", "Increase", "Indulge", "Inform", "Inquire", "Inspect", "Invade", "Leave", "Lure",
	"Misuse", "Move", "Neglect", "Observe", "Open", "Oppose", "Overthrow", "Praise", "Proceed", "Protect",
	"Punish", "Pursue", "Recruit", "Refuse", "Release", "Relinquish", "Repair", "Repulse", "Return", "Reward",
	"Ruin", "Separate", "Start", "Stop", "Strange", "Struggle", "Succeed", "Support", "Suppress", "Take",
	"Threaten", "Transform", "Trap", "Travel", "Triumph", "Truce", "Trust", "Use", "Usurp", "Waste",
}

var meaningActions2 = [100]string{
	"Advantage", "Adversity", "Agreement", "Animal", "Attention", "Balance", "Battle", "Benefits", "Building", "Burden",
	"Bureaucracy", "Business", "Chaos", "Comfort", "Completion", "Conflict", "Cooperation", "Danger", "Defense", "Depletion",
	"Disadvantage", "Distraction", "Elements", "Emotion", "Enemy", "Energy", "Environment", "Expectation", "Exterior", "Extravagance",
	"Failure", "Fame", "Fear", "Freedom", "Friend", "Goal", "Group", "Health", "Hindrance", "Home",
	"Hope", "Idea", "Illness", "Illusion", "Individual", "Information", "Innocent", "Intellect", "Interior", "Investment",
	"Leadership", "Legal", "Location", "Military", "Misfortune", "Mundane", "Nature", "Needs", "News", "Normal",
	"Object", "Obscurity", "Official", "Opposition", "Outside", "Pain", "Path", "Peace", "People", "Personal",
	"Physical", "Plot", "Portal", "Possessions", "Poverty", "Power", "Prison", "Project", "Protection", "Reassurance",
	"Representative", "Riches", "Safety", "Strength", "Success", "Suffering", "Surprise", "Tactic", "Technology", "Tension",
	"Time", "Trial", "Value", "Vehicle", "Victory", "Vulnerability", "Weapon", "Weather", "Work", "Wound",
}

// eventFocus resolves a d100 roll against the focus table
func eventFocus(roll int) string {
	for _, r := range eventFocusTable {
		if roll >= r.min && roll <= r.max {
			return r.value
		}
	}
	return "Current Context"
}

// sceneAdjustment returns the adjustment directive for a chaos d10 roll
func sceneAdjustment(chaosRoll int) string {
	if chaosRoll < 1 || chaosRoll > 10 {
		return ""
	}
	return sceneAdjustmentTable[chaosRoll-1]
}
