package store

// Fixed property inventory for 20 Park Residences. The store is recreated
// from this data on every fresh start.

func seedUnits() []Unit {
	return []Unit{
		{ID: 101, UnitNumber: "101", UnitType: "1_bedroom", FloorPlan: "Maple", SquareFeet: 750, Bedrooms: 1, Bathrooms: 1.0, RentAmount: 1600.0, IsAvailable: true, AvailableDate: "2025-07-01", Features: "Corner unit, extra windows"},
		{ID: 102, UnitNumber: "102", UnitType: "1_bedroom", FloorPlan: "Maple", SquareFeet: 750, Bedrooms: 1, Bathrooms: 1.0, RentAmount: 1600.0, IsAvailable: true, AvailableDate: "2025-07-15", Features: "Updated kitchen"},
		{ID: 103, UnitNumber: "103", UnitType: "1_bedroom", FloorPlan: "Cedar", SquareFeet: 780, Bedrooms: 1, Bathrooms: 1.0, RentAmount: 1650.0, IsAvailable: false, AvailableDate: "2025-06-01", Features: "Balcony, park view"},
		{ID: 201, UnitNumber: "201", UnitType: "1_bedroom", FloorPlan: "Cedar", SquareFeet: 780, Bedrooms: 1, Bathrooms: 1.0, RentAmount: 1650.0, IsAvailable: false, AvailableDate: "2025-08-01", Features: "Extra closet space"},
		{ID: 301, UnitNumber: "301", UnitType: "2_bedroom", FloorPlan: "Birch", SquareFeet: 1050, Bedrooms: 2, Bathrooms: 2.0, RentAmount: 2100.0, IsAvailable: true, AvailableDate: "2025-07-01", Features: "Corner unit, city view"},
		{ID: 302, UnitNumber: "302", UnitType: "2_bedroom", FloorPlan: "Birch", SquareFeet: 1050, Bedrooms: 2, Bathrooms: 2.0, RentAmount: 2100.0, IsAvailable: true, AvailableDate: "2025-07-01", Features: "Updated bathrooms"},
		{ID: 401, UnitNumber: "401", UnitType: "2_bedroom", FloorPlan: "Aspen", SquareFeet: 1100, Bedrooms: 2, Bathrooms: 2.0, RentAmount: 2200.0, IsAvailable: false, AvailableDate: "2025-06-15", Features: "Premium finishes"},
		{ID: 402, UnitNumber: "402", UnitType: "2_bedroom", FloorPlan: "Aspen", SquareFeet: 1100, Bedrooms: 2, Bathrooms: 2.0, RentAmount: 2200.0, IsAvailable: false, AvailableDate: "2025-09-01", Features: "Penthouse floor"},
	}
}

func seedAmenities() []Amenity {
	return []Amenity{
		{ID: 1, Name: "Dog-friendly", Description: "Dogs allowed", Category: "Pets", FeeAmount: 50.0, IsIncluded: true},
		{ID: 2, Name: "Cat-friendly", Description: "Cats allowed", Category: "Pets", FeeAmount: 30.0, IsIncluded: true},
		{ID: 3, Name: "Fitness Center", Description: "24-hour access fitness center", Category: "Building", FeeAmount: 0.0, IsIncluded: true},
		{ID: 4, Name: "Pool", Description: "Outdoor pool with sundeck", Category: "Recreation", FeeAmount: 0.0, IsIncluded: true},
		{ID: 5, Name: "Parking", Description: "Covered parking", Category: "Transportation", FeeAmount: 75.0, IsIncluded: false},
		{ID: 6, Name: "In-unit Washer/Dryer", Description: "Washer and dryer in each unit", Category: "In-unit", FeeAmount: 0.0, IsIncluded: true},
		{ID: 7, Name: "Package Lockers", Description: "24-hour package pickup lockers", Category: "Building", FeeAmount: 0.0, IsIncluded: true},
		{ID: 8, Name: "High-speed Internet", Description: "Fiber internet ready", Category: "Technology", FeeAmount: 0.0, IsIncluded: true},
		{ID: 9, Name: "Security System", Description: "24-hour security monitoring", Category: "Safety", FeeAmount: 0.0, IsIncluded: true},
		{ID: 10, Name: "Bike Storage", Description: "Indoor bike storage area", Category: "Transportation", FeeAmount: 0.0, IsIncluded: true},
	}
}
