package command

import (
	"github.com/kostyll/HudlFfmpeg/internal/filter"
	"github.com/kostyll/HudlFfmpeg/internal/settings"
)

// Stage is a transient selection of receipts scoped to one command. It is
// consumed by Filter or MapTo and holds no state of its own in the command.
type Stage struct {
	command  *Command
	receipts []Receipt
}

// Command returns the command the stage was selected from.
func (s *Stage) Command() *Command { return s.command }

// Receipts returns a copy of the selected receipts.
func (s *Stage) Receipts() []Receipt { return append([]Receipt(nil), s.receipts...) }

// Len returns the number of selected receipts.
func (s *Stage) Len() int { return len(s.receipts) }

// Filter applies specs to the stage. See Command.ApplyFilters.
func (s *Stage) Filter(specs ...filter.Spec) (*Filterchain, error) {
	return s.command.ApplyFilters(s, specs...)
}

// MapTo binds the stage's receipts to a new output destination.
func (s *Stage) MapTo(locator string, collection ...settings.Collection) (*CommandOutput, error) {
	return s.command.addOutput("map to", locator, collection, s.receipts)
}

// MapToMany binds the same receipts to each destination in order, halting on
// the first failure.
func (s *Stage) MapToMany(locators []string, collection ...settings.Collection) ([]*CommandOutput, error) {
	return s.command.addOutputs("map to many", locators, collection, s.receipts)
}
