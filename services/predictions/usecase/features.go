package usecase

import (
	"time"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/internal/utils"
)

// BuildFeatureVector derives the full model feature vector from a raw trip
// request. The derived temporal flags follow the conventions the model was
// trained with: day_of_week counts from 0=Monday, night hours are 20:00
// through 05:59 and rush hours are 07:00-10:59 and 16:00-19:59.
func BuildFeatureVector(trip models.TripFeatures) (models.FeatureVector, error) {
	if !utils.ValidCoordinates(trip.PickupLatitude, trip.PickupLongitude) {
		return nil, apperrors.New(apperrors.KindValidation, "pickup coordinates out of range")
	}
	if !utils.ValidCoordinates(trip.DropoffLatitude, trip.DropoffLongitude) {
		return nil, apperrors.New(apperrors.KindValidation, "dropoff coordinates out of range")
	}
	if trip.PassengerCount < 1 || trip.PassengerCount > 8 {
		return nil, apperrors.New(apperrors.KindValidation, "passenger_count must be between 1 and 8")
	}
	if trip.VendorID != 1 && trip.VendorID != 2 {
		return nil, apperrors.New(apperrors.KindValidation, "vendor_id must be 1 or 2")
	}

	pickupTime, err := time.Parse(models.PickupDatetimeLayout, trip.PickupDatetime)
	if err != nil {
		return nil, apperrors.Newf(apperrors.KindValidation,
			"pickup_datetime must match format %s", models.PickupDatetimeLayout)
	}

	storeAndFwd := 0.0
	if trip.StoreAndFwdFlag == "Y" {
		storeAndFwd = 1.0
	}

	distanceKm := utils.CalculateDistance(
		utils.GeoPoint{Latitude: trip.PickupLatitude, Longitude: trip.PickupLongitude},
		utils.GeoPoint{Latitude: trip.DropoffLatitude, Longitude: trip.DropoffLongitude},
	)

	hour := pickupTime.Hour()
	// time.Weekday counts from 0=Sunday, the model counts from 0=Monday.
	dayOfWeek := (int(pickupTime.Weekday()) + 6) % 7
	month := int(pickupTime.Month())

	isWeekend := 0.0
	if dayOfWeek >= 5 {
		isWeekend = 1.0
	}
	isNight := 0.0
	if hour >= 20 || hour < 6 {
		isNight = 1.0
	}
	isRushHour := 0.0
	if (hour >= 7 && hour <= 10) || (hour >= 16 && hour <= 19) {
		isRushHour = 1.0
	}

	return models.FeatureVector{
		"vendor_id":          float64(trip.VendorID),
		"passenger_count":    float64(trip.PassengerCount),
		"pickup_longitude":   trip.PickupLongitude,
		"pickup_latitude":    trip.PickupLatitude,
		"dropoff_longitude":  trip.DropoffLongitude,
		"dropoff_latitude":   trip.DropoffLatitude,
		"store_and_fwd_flag": storeAndFwd,
		"distance_km":        distanceKm,
		"hour":               float64(hour),
		"day_of_week":        float64(dayOfWeek),
		"month":              float64(month),
		"is_weekend":         isWeekend,
		"is_night":           isNight,
		"is_rush_hour":       isRushHour,
	}, nil
}
