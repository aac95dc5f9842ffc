package services

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"doctors_portal_go/models"
)

func bracesOption() models.AppointmentOption {
	return models.AppointmentOption{
		Name:  "Braces",
		Price: 99,
		Slots: []string{"9am", "10am", "11am"},
	}
}

func TestRemainingSlots_SubtractsBooked(t *testing.T) {
	remaining := RemainingSlots([]string{"9am", "10am", "11am"}, []string{"10am"})

	expected := []string{"9am", "11am"}
	if !reflect.DeepEqual(remaining, expected) {
		t.Fatalf("expected %v, got %v", expected, remaining)
	}
}

func TestRemainingSlots_PreservesOrder(t *testing.T) {
	remaining := RemainingSlots([]string{"8am", "9am", "10am", "11am", "12pm"}, []string{"11am", "8am"})

	expected := []string{"9am", "10am", "12pm"}
	if !reflect.DeepEqual(remaining, expected) {
		t.Fatalf("expected %v, got %v", expected, remaining)
	}
}

func TestRemainingSlots_IgnoresUnknownBookedValues(t *testing.T) {
	remaining := RemainingSlots([]string{"9am", "10am"}, []string{"3pm", "9am"})

	expected := []string{"10am"}
	if !reflect.DeepEqual(remaining, expected) {
		t.Fatalf("expected %v, got %v", expected, remaining)
	}
}

func TestRemainingSlots_NoBookings(t *testing.T) {
	slots := []string{"9am", "10am", "11am"}
	remaining := RemainingSlots(slots, nil)

	if !reflect.DeepEqual(remaining, slots) {
		t.Fatalf("expected all slots open, got %v", remaining)
	}
}

func TestBookedSlotsByTreatment(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Braces", Slot: "10am"},
		{Treatment: "Whitening", Slot: "9am"},
		{Treatment: "Braces", Slot: "11am"},
	}

	grouped := BookedSlotsByTreatment(bookings)

	if !reflect.DeepEqual(grouped["Braces"], []string{"10am", "11am"}) {
		t.Fatalf("expected Braces slots [10am 11am], got %v", grouped["Braces"])
	}
	if !reflect.DeepEqual(grouped["Whitening"], []string{"9am"}) {
		t.Fatalf("expected Whitening slots [9am], got %v", grouped["Whitening"])
	}
}

func TestApplyBookings_BracesScenario(t *testing.T) {
	options := []models.AppointmentOption{bracesOption()}
	bookings := []models.Booking{
		{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "10am"},
	}

	result := ApplyBookings(options, bookings)

	if len(result) != 1 {
		t.Fatalf("expected 1 option, got %d", len(result))
	}
	if !reflect.DeepEqual(result[0].Slots, []string{"9am", "11am"}) {
		t.Fatalf("expected [9am 11am], got %v", result[0].Slots)
	}
	if result[0].Name != "Braces" || result[0].Price != 99 {
		t.Fatalf("name and price must pass through unchanged, got %+v", result[0])
	}
}

func TestApplyBookings_NoBookingsOnDate(t *testing.T) {
	// A date with no bookings, including one stored in a different format
	// that the exact-match query never finds, leaves every slot open.
	result := ApplyBookings([]models.AppointmentOption{bracesOption()}, nil)

	if !reflect.DeepEqual(result[0].Slots, []string{"9am", "10am", "11am"}) {
		t.Fatalf("expected all slots open, got %v", result[0].Slots)
	}
}

func TestApplyBookings_OtherTreatmentUntouched(t *testing.T) {
	options := []models.AppointmentOption{
		bracesOption(),
		{Name: "Whitening", Price: 49, Slots: []string{"9am", "10am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "9am"},
	}

	result := ApplyBookings(options, bookings)

	if !reflect.DeepEqual(result[0].Slots, []string{"10am", "11am"}) {
		t.Fatalf("expected Braces [10am 11am], got %v", result[0].Slots)
	}
	if !reflect.DeepEqual(result[1].Slots, []string{"9am", "10am"}) {
		t.Fatalf("expected Whitening untouched, got %v", result[1].Slots)
	}
}

func TestApplyBookings_Idempotent(t *testing.T) {
	options := []models.AppointmentOption{bracesOption()}
	bookings := []models.Booking{
		{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "10am"},
	}

	first := ApplyBookings(options, bookings)
	second := ApplyBookings(options, bookings)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated computation differs: %v vs %v", first, second)
	}
	// the input option list must not be mutated
	if !reflect.DeepEqual(options[0].Slots, []string{"9am", "10am", "11am"}) {
		t.Fatalf("input options were mutated: %v", options[0].Slots)
	}
}

func TestAvailabilityPipeline_Shape(t *testing.T) {
	pipeline := availabilityPipeline("2023-01-01")

	if len(pipeline) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(pipeline))
	}

	lookup := pipeline[0]
	if lookup[0].Key != "$lookup" {
		t.Fatalf("expected first stage $lookup, got %q", lookup[0].Key)
	}

	spec, ok := lookup[0].Value.(bson.D)
	if !ok {
		t.Fatalf("expected $lookup spec to be bson.D, got %T", lookup[0].Value)
	}
	fields := spec.Map()
	if fields["from"] != "bookings" {
		t.Fatalf("expected lookup from bookings, got %v", fields["from"])
	}
	if fields["localField"] != "name" || fields["foreignField"] != "treatment" {
		t.Fatalf("expected join on name/treatment, got %v/%v", fields["localField"], fields["foreignField"])
	}

	// the joined bookings must be narrowed to the queried date
	inner, ok := fields["pipeline"].(bson.A)
	if !ok || len(inner) != 1 {
		t.Fatalf("expected a single inner $match stage, got %v", fields["pipeline"])
	}
	match := inner[0].(bson.D).Map()["$match"].(bson.D).Map()
	if match["appointmentDate"] != "2023-01-01" {
		t.Fatalf("expected inner match on appointmentDate=2023-01-01, got %v", match)
	}

	// slot subtraction must keep the option's slot order, so the final stage
	// filters the original array instead of using $setDifference
	final := pipeline[2][0].Value.(bson.D).Map()
	slotsExpr, ok := final["slots"].(bson.D)
	if !ok || slotsExpr[0].Key != "$filter" {
		t.Fatalf("expected order-preserving $filter over slots, got %v", final["slots"])
	}
}

// evalSlotsExpr evaluates the pipeline's final slots expression the way the
// server would, over a document carrying the given slots and bookedSlots.
func evalSlotsExpr(t *testing.T, expr interface{}, slots, bookedSlots []string) []string {
	t.Helper()

	filter, ok := expr.(bson.D)
	if !ok || filter[0].Key != "$filter" {
		t.Fatalf("expected a $filter expression, got %v", expr)
	}
	spec := filter[0].Value.(bson.D).Map()
	if spec["input"] != "$slots" {
		t.Fatalf("expected $filter over $slots, got %v", spec["input"])
	}
	slotVar, ok := spec["as"].(string)
	if !ok {
		t.Fatalf("expected a named $filter variable, got %v", spec["as"])
	}

	result := []string{}
	for _, slot := range slots {
		if evalCond(t, spec["cond"], slotVar, slot, bookedSlots) {
			result = append(result, slot)
		}
	}
	return result
}

func evalCond(t *testing.T, cond interface{}, slotVar, slot string, bookedSlots []string) bool {
	t.Helper()

	operator, ok := cond.(bson.D)
	if !ok {
		t.Fatalf("expected an operator expression, got %T", cond)
	}

	switch operator[0].Key {
	case "$not":
		args := operator[0].Value.(bson.A)
		return !evalCond(t, args[0], slotVar, slot, bookedSlots)
	case "$in":
		args := operator[0].Value.(bson.A)
		if args[0] != "$$"+slotVar {
			t.Fatalf("expected $in over the filter variable, got %v", args[0])
		}
		if args[1] != "$bookedSlots" {
			t.Fatalf("expected $in against $bookedSlots, got %v", args[1])
		}
		for _, booked := range bookedSlots {
			if booked == slot {
				return true
			}
		}
		return false
	default:
		t.Fatalf("unexpected operator %q", operator[0].Key)
		return false
	}
}

func TestAvailabilityPipeline_MatchesInMemoryVariant(t *testing.T) {
	pipeline := availabilityPipeline("2023-01-01")
	slotsExpr := pipeline[2][0].Value.(bson.D).Map()["slots"]

	fixtures := []struct {
		slots       []string
		bookedSlots []string
	}{
		{[]string{"9am", "10am", "11am"}, []string{"10am"}},
		{[]string{"9am", "10am", "11am"}, nil},
		{[]string{"8am", "9am", "10am", "11am"}, []string{"11am", "8am"}},
		{[]string{"9am", "10am"}, []string{"3pm", "9am"}},
	}

	for _, fixture := range fixtures {
		fromPipeline := evalSlotsExpr(t, slotsExpr, fixture.slots, fixture.bookedSlots)
		fromMemory := RemainingSlots(fixture.slots, fixture.bookedSlots)

		if !reflect.DeepEqual(fromPipeline, fromMemory) {
			t.Fatalf("variants disagree for slots=%v booked=%v: pipeline=%v in-memory=%v",
				fixture.slots, fixture.bookedSlots, fromPipeline, fromMemory)
		}
	}
}
