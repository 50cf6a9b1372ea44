package patterns

func init() {
	Register(Pattern{Name: "block", Description: "still life", Rows: []string{
		"OO",
		"OO",
	}})
	Register(Pattern{Name: "beehive", Description: "still life", Rows: []string{
		".OO.",
		"O..O",
		".OO.",
	}})
	Register(Pattern{Name: "blinker", Description: "period 2 oscillator", Rows: []string{
		"OOO",
	}})
	Register(Pattern{Name: "toad", Description: "period 2 oscillator", Rows: []string{
		".OOO",
		"OOO.",
	}})
	Register(Pattern{Name: "beacon", Description: "period 2 oscillator", Rows: []string{
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	}})
	Register(Pattern{Name: "glider", Description: "diagonal spaceship, period 4", Rows: []string{
		".O.",
		"..O",
		"OOO",
	}})
	Register(Pattern{Name: "lwss", Description: "lightweight spaceship, period 4", Rows: []string{
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	}})
	Register(Pattern{Name: "r-pentomino", Description: "methuselah, stabilizes after 1103 generations", Rows: []string{
		".OO",
		"OO.",
		".O.",
	}})
	Register(Pattern{Name: "diehard", Description: "methuselah, vanishes after 130 generations", Rows: []string{
		"......O.",
		"OO......",
		".O...OOO",
	}})
	Register(Pattern{Name: "acorn", Description: "methuselah, 5206 generations", Rows: []string{
		".O.....",
		"...O...",
		"OO..OOO",
	}})
	Register(Pattern{Name: "gosper-gun", Description: "glider gun, period 30", Rows: []string{
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	}})
}
