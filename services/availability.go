package services

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors_portal_go/db"
	"doctors_portal_go/models"
)

// RemainingSlots subtracts booked slot values from an option's slot list,
// preserving the original order. Booked values that are not in the list are
// ignored.
func RemainingSlots(optionSlots, bookedSlots []string) []string {
	booked := make(map[string]struct{}, len(bookedSlots))
	for _, slot := range bookedSlots {
		booked[slot] = struct{}{}
	}

	remaining := make([]string, 0, len(optionSlots))
	for _, slot := range optionSlots {
		if _, taken := booked[slot]; !taken {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

// BookedSlotsByTreatment groups the slot values of the given bookings by
// treatment name.
func BookedSlotsByTreatment(bookings []models.Booking) map[string][]string {
	grouped := make(map[string][]string)
	for _, booking := range bookings {
		grouped[booking.Treatment] = append(grouped[booking.Treatment], booking.Slot)
	}
	return grouped
}

// ApplyBookings replaces each option's slots with the ones still open given
// the bookings of a single date. Options are returned in their original order.
func ApplyBookings(options []models.AppointmentOption, bookings []models.Booking) []models.AppointmentOption {
	bookedByTreatment := BookedSlotsByTreatment(bookings)

	result := make([]models.AppointmentOption, len(options))
	for i, option := range options {
		option.Slots = RemainingSlots(option.Slots, bookedByTreatment[option.Name])
		result[i] = option
	}
	return result
}

// availabilityPipeline is the server-side equivalent of ApplyBookings: join
// bookings of the date onto each option by treatment name, collect their slot
// values, and filter them out of the option's slots. $filter keeps the slot
// order, which $setDifference would not guarantee.
func availabilityPipeline(date string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.Bookings},
			{Key: "localField", Value: "name"},
			{Key: "foreignField", Value: "treatment"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "appointmentDate", Value: date}}}},
			}},
			{Key: "as", Value: "bookingsOnDate"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "price", Value: 1},
			{Key: "slots", Value: 1},
			{Key: "bookedSlots", Value: bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: "$bookingsOnDate"},
				{Key: "as", Value: "booking"},
				{Key: "in", Value: "$$booking.slot"},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "price", Value: 1},
			{Key: "slots", Value: bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: "$slots"},
				{Key: "as", Value: "slot"},
				{Key: "cond", Value: bson.D{{Key: "$not", Value: bson.A{
					bson.D{{Key: "$in", Value: bson.A{"$$slot", "$bookedSlots"}}},
				}}}},
			}}}},
		}}},
	}
}
