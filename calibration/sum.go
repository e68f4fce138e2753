package calibration

import "github.com/maisem/aoc2023"

// Totals are the sums of the calibration values of a document. Calibration
// counts digits only, Corrected counts spelled-out digits too.
type Totals struct {
	Calibration int
	Corrected   int
}

// Add returns t with the values of one line added.
func (t Totals) Add(calibration, corrected int) Totals {
	return Totals{
		Calibration: t.Calibration + calibration,
		Corrected:   t.Corrected + corrected,
	}
}

// Sum scores every non-blank line of text with DigitsOnly and DigitsAndWords.
func Sum(text string) Totals {
	return SumWith(text, Scan)
}

// SumWith is like Sum but scores corrected values with the given strategy.
func SumWith(text string, corrected Strategy) Totals {
	return aoc.Fold(aoc.Records(text), func(t Totals, line string) Totals {
		return t.Add(DigitsOnly(line), corrected(line))
	}, Totals{})
}
