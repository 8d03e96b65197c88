package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Roster:
		o.printRoster(v)
	case Assembly:
		o.printAssembly(v)
	case SelectablePlayers:
		o.printSelectable(v)
	case Prediction:
		o.printPrediction(v)
	default:
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("%s  %s  ordinal=%.3f mu=%.3f sigma=%.3f\n", p.ID, p.Name, p.Ordinal, p.Mu, p.Sigma)
}

func (o *Output) printRoster(r Roster) {
	if len(r.Players) == 0 {
		fmt.Println("Roster is empty")
		return
	}

	fmt.Printf("%-5s %-20s %10s %10s %10s  %s\n", "RANK", "NAME", "ORDINAL", "MU", "SIGMA", "ID")
	for _, p := range r.Players {
		fmt.Printf("%-5d %-20s %10.3f %10.3f %10.3f  %s\n", p.Rank, p.Name, p.Ordinal, p.Mu, p.Sigma, p.ID)
	}
}

func (o *Output) printAssembly(a Assembly) {
	if len(a.Teams) == 0 {
		fmt.Println("No teams assembled")
		return
	}

	for _, t := range a.Teams {
		names := make([]string, len(t.Members))
		for i, m := range t.Members {
			names[i] = m.Name
		}
		line := fmt.Sprintf("Team %d:", t.Index)
		for _, n := range names {
			line += " " + n
		}
		if t.WinProbability != nil {
			line += fmt.Sprintf("  (win %.5f)", *t.WinProbability)
		}
		fmt.Println(line)
	}
	if a.DrawProbability != nil {
		fmt.Printf("Draw: %.5f\n", *a.DrawProbability)
	}
}

func (o *Output) printSelectable(s SelectablePlayers) {
	if len(s.Players) == 0 {
		fmt.Println("No selectable players")
		return
	}
	for _, p := range s.Players {
		fmt.Printf("%s  %s\n", p.ID, p.Name)
	}
}

func (o *Output) printPrediction(p Prediction) {
	if len(p.Wins) == 0 {
		fmt.Println("No prediction (need at least two teams)")
		return
	}
	for i, win := range p.Wins {
		fmt.Printf("Team %d win: %.5f\n", i, win)
	}
	fmt.Printf("Draw: %.5f\n", p.Draw)
}
