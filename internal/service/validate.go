package service

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/mmynk/wedplan/internal/models"
)

// validate checks the `validate` tags on the models. Field names in its
// errors are the JSON names clients send.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Amounts are validated in their canonical string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "nonnegative", nonNegative)
	mustRegister(v, "notzero", notZero)

	// Optional strings may be cleared with "", so a non-nil pointer to ""
	// must pass as well.
	v.RegisterAlias("opt_email", "eq=|email")
	v.RegisterAlias("opt_url", "eq=|url")
	v.RegisterAlias("opt_clock", "eq=|datetime=15:04")
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func nonNegative(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

func notZero(fl validator.FieldLevel) bool {
	return !fl.Field().IsZero()
}

// check runs the tag validation on a model or patch.
func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

func validateNewTask(t *models.Task) error {
	if t.Status == "" {
		t.Status = models.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	if t.AssignedTo == "" {
		t.AssignedTo = models.AssigneeBoth
	}
	return check(t)
}

func validateTaskPatch(p *models.TaskPatch) error {
	return check(p)
}

func validateNewGuest(g *models.Guest) error {
	if g.RSVP == "" {
		g.RSVP = models.RSVPNotSent
	}
	return check(g)
}

func validateGuestPatch(p *models.GuestPatch) error {
	return check(p)
}

func validateNewExpense(e *models.Expense) error {
	if e.Status == "" {
		e.Status = models.ExpensePlanned
	}
	return check(e)
}

func validateExpensePatch(p *models.ExpensePatch) error {
	return check(p)
}

func validateNewVendor(v *models.Vendor) error {
	if v.Status == "" {
		v.Status = models.VendorConsidering
	}
	return check(v)
}

func validateVendorPatch(p *models.VendorPatch) error {
	return check(p)
}

func validateNewTimelineEvent(e *models.TimelineEvent) error {
	return check(e)
}

func validateTimelineEventPatch(p *models.TimelineEventPatch) error {
	return check(p)
}

// normalizeTags trims tags and drops empty and duplicate ones.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func validateNewNote(n *models.Note) error {
	n.Tags = normalizeTags(n.Tags)
	return check(n)
}

func validateNotePatch(p *models.NotePatch) error {
	if p.Tags != nil {
		tags := normalizeTags(*p.Tags)
		p.Tags = &tags
	}
	return check(p)
}

func validateNewScenario(s *models.BudgetScenario) error {
	return check(s)
}

func validateScenarioPatch(p *models.ScenarioPatch) error {
	return check(p)
}

func validateProjectPatch(p *models.ProjectPatch) error {
	return check(p)
}
