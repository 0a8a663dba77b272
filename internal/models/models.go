package models

import "fmt"

// TeamSize is the fixed roster size; a stored team always has exactly five players.
const TeamSize = 5

type Player struct {
	Name string
	Tag  string
}

type Team struct {
	TeamName string
	Members  [TeamSize]Player
}

// RowWidth is the number of sheet cells one team occupies:
// the team name followed by five name/tag pairs.
const RowWidth = 1 + TeamSize*2

// ToRow lays the team out as one sheet row:
// [team, name1, tag1, name2, tag2, ..., name5, tag5].
func (t Team) ToRow() []interface{} {
	row := make([]interface{}, 0, RowWidth)
	row = append(row, t.TeamName)
	for _, m := range t.Members {
		row = append(row, m.Name, m.Tag)
	}
	return row
}

// TeamFromRow rebuilds a team from a sheet row produced by ToRow.
func TeamFromRow(row []string) (Team, error) {
	if len(row) < RowWidth {
		return Team{}, fmt.Errorf("row has %d cells, want %d", len(row), RowWidth)
	}
	t := Team{TeamName: row[0]}
	for i := 0; i < TeamSize; i++ {
		t.Members[i] = Player{Name: row[1+i*2], Tag: row[2+i*2]}
	}
	return t, nil
}
