package model

// ScriptedReplies are the canned coach answers used when the chat backend
// cannot be reached. Keys are matched against the message by keyword.
var ScriptedReplies = map[string]string{
	"thermodynamics": "Thermodynamics is all about heat, work, and energy. Key concepts:\n\n• First Law: Energy can be transformed but not created/destroyed\n• Second Law: Entropy always increases in spontaneous processes\n• Key formulas: ΔU = Q - W, ΔH = ΔU + PΔV\n\nFocus on understanding the laws and practice problems involving heat capacity!",

	"carnot": "The Carnot cycle is an ideal reversible cycle:\n\n1. Isothermal Expansion (heat absorbed)\n2. Adiabatic Expansion (temp drops)\n3. Isothermal Compression (heat rejected)\n\nEfficiency = 1 - Tc/Th (cold temp / hot temp). It's the most efficient heat engine possible!",

	"organic": "Organic Chemistry tips:\n\n• Focus on reaction mechanisms (curly arrows!)\n• Know the functional groups and their properties\n• Practice named reactions: SN1, SN2, E1, E2\n\nStart with mechanism basics - electron flow is key!",

	"hours": "For JEE/NEET preparation, aim for:\n\n• 6-8 hours daily during study phase\n• Focus on weak topics first\n• Take short breaks every 45 minutes\n\nQuality over quantity - it's not about how long you study, but how effectively!",

	"practice": "Here are 3 practice tips:\n\n1. Start with easier questions to build confidence\n2. Time yourself - aim for 2 min per question\n3. Review mistakes immediately - don't let them accumulate\n\nConsistent practice is the key to success!",

	"default": "Great question! Here are some general tips:\n\n1. Focus on your weak topics first\n2. Practice regularly with mock tests\n3. Review mistakes and understand concepts\n4. Stay consistent with your study schedule\n\nKeep pushing forward - every step counts towards your goal! 💪",
}
