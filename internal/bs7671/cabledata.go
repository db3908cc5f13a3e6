package bs7671

// CableDatabase holds copper cable data by reference method, with UK
// trade pricing per metre (January 2025).
//
// R1+R2 assumes a CPC of the same size as the line conductor, except twin &
// earth, which uses the reduced CPC of 6242Y. Flexible cords have no reference
// method and cannot be used for fixed wiring tables.
var CableDatabase = map[string]CableType{
	"pvc-twin-earth": {
		Key:                  "pvc-twin-earth",
		Name:                 "PVC Twin & Earth",
		Description:          "Standard UK domestic cable with CPC - 6242Y",
		TemperatureC:         70,
		VoltageRating:        300,
		MaxPracticalSizeMm2:  10,
		MinBendRadius:        4,
		FirePerformance:      FireStandard,
		MechanicalProtection: ProtectionNone,
		Methods:              []ReferenceMethod{MethodA1, MethodA2, MethodB1, MethodB2, MethodC},
		Applications:         []string{
			"Domestic lighting circuits",
			"Ring final circuits",
			"Radial circuits",
			"Immersion heater circuits",
			"Cooker circuits up to 32A",
		},
		Limitations: []string{
			"Not suitable for direct burial",
			"Practical size limit 10mm² due to termination difficulties",
			"Not suitable for high-current industrial applications",
			"Limited mechanical protection",
		},
		Recommendations: []string{
			"Ideal for standard domestic installations",
			"Use conduit or trunking for mechanical protection",
			"Consider SWA for higher currents or burial",
		},
		rows: []capacityRow{
			{1, [10]float64{11, 13, 13, 16, 20, 0, 0, 22, 0, 0}, 44, 36.20},
			{1.5, [10]float64{14, 16, 17, 20, 26, 0, 0, 29, 0, 0}, 29, 30.20},
			{2.5, [10]float64{18, 21, 23, 27, 36, 0, 0, 39, 0, 0}, 18, 19.51},
			{4, [10]float64{24, 28, 30, 36, 49, 0, 0, 53, 0, 0}, 11, 16.71},
			{6, [10]float64{31, 36, 38, 46, 62, 0, 0, 69, 0, 0}, 7.3, 10.49},
			{10, [10]float64{42, 50, 52, 63, 85, 0, 0, 94, 0, 0}, 4.4, 6.44},
		},
		pricing: []CablePrice{
			{1, 0.85, 1.2, SupplierPrices{1.35, 1.15, 1.1, 1.3}, InStock, 0, BulkDiscounts{5, 12, 18}},
			{1.5, 1.05, 1.45, SupplierPrices{1.65, 1.4, 1.35, 1.6}, InStock, 0, BulkDiscounts{5, 12, 18}},
			{2.5, 1.65, 2.25, SupplierPrices{2.55, 2.15, 2.1, 2.45}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{4, 2.45, 3.35, SupplierPrices{3.85, 3.2, 3.1, 3.7}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{6, 3.85, 5.25, SupplierPrices{5.95, 5.05, 4.9, 5.75}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{10, 6.45, 8.75, SupplierPrices{9.95, 8.35, 8.15, 9.65}, InStock, 0, BulkDiscounts{10, 18, 25}},
		},
	},
	"swa-xlpe": {
		Key:                  "swa-xlpe",
		Name:                 "SWA XLPE Cable",
		Description:          "Steel Wire Armoured XLPE Insulated Cable - 6944X",
		TemperatureC:         90,
		VoltageRating:        1000,
		MaxPracticalSizeMm2:  400,
		MinBendRadius:        6,
		FirePerformance:      FireStandard,
		MechanicalProtection: ProtectionHeavy,
		UVResistant:          true,
		DirectBurial:         true,
		Methods:              []ReferenceMethod{MethodC, MethodD1, MethodD2, MethodE, MethodF, MethodG},
		Applications:         []string{
			"High-current industrial circuits",
			"Direct burial applications",
			"External building feeds",
			"Distribution boards",
			"Motor circuits",
			"High-power equipment feeds",
		},
		Limitations: []string{
			"Requires glands for termination",
			"Higher cost than T&E",
			"Larger bend radius required",
		},
		Recommendations: []string{
			"Preferred for circuits above 32A",
			"Essential for direct burial",
			"Use for external or underground feeds",
			"Consider when mechanical protection needed",
		},
		rows: []capacityRow{
			{1.5, [10]float64{0, 0, 0, 0, 32, 25, 27, 36, 34, 38}, 29, 24.2},
			{2.5, [10]float64{0, 0, 0, 0, 43, 33, 36, 48, 46, 51}, 18, 14.6},
			{4, [10]float64{0, 0, 0, 0, 57, 44, 48, 64, 61, 68}, 11, 9.2},
			{6, [10]float64{0, 0, 0, 0, 73, 56, 61, 82, 78, 87}, 7.3, 6.16},
			{10, [10]float64{0, 0, 0, 0, 98, 75, 81, 110, 105, 117}, 4.4, 3.66},
			{16, [10]float64{0, 0, 0, 0, 131, 100, 108, 147, 140, 156}, 2.8, 2.3},
			{25, [10]float64{0, 0, 0, 0, 168, 128, 138, 189, 180, 200}, 1.75, 1.454},
			{35, [10]float64{0, 0, 0, 0, 201, 153, 165, 226, 215, 239}, 1.25, 1.048},
			{50, [10]float64{0, 0, 0, 0, 242, 184, 198, 272, 259, 288}, 0.93, 0.774},
			{70, [10]float64{0, 0, 0, 0, 310, 236, 254, 348, 331, 368}, 0.64, 0.536},
			{95, [10]float64{0, 0, 0, 0, 375, 285, 307, 421, 400, 445}, 0.46, 0.386},
			{120, [10]float64{0, 0, 0, 0, 431, 328, 353, 484, 460, 512}, 0.37, 0.306},
			{150, [10]float64{0, 0, 0, 0, 491, 374, 402, 551, 524, 583}, 0.3, 0.248},
			{185, [10]float64{0, 0, 0, 0, 557, 424, 456, 625, 594, 661}, 0.24, 0.198},
			{240, [10]float64{0, 0, 0, 0, 641, 488, 525, 720, 684, 762}, 0.18, 0.15},
			{300, [10]float64{0, 0, 0, 0, 738, 562, 605, 829, 788, 877}, 0.145, 0.12},
			{400, [10]float64{0, 0, 0, 0, 855, 651, 701, 960, 912, 1015}, 0.113, 0.094},
		},
		pricing: []CablePrice{
			{1.5, 2.45, 3.35, SupplierPrices{3.85, 3.2, 3.1, 3.7}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{2.5, 3.25, 4.45, SupplierPrices{5.15, 4.25, 4.1, 4.95}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{4, 4.65, 6.35, SupplierPrices{7.35, 6.05, 5.85, 7.05}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{6, 6.85, 9.35, SupplierPrices{10.85, 8.95, 8.65, 10.45}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{10, 10.45, 14.25, SupplierPrices{16.55, 13.65, 13.15, 15.95}, InStock, 0, BulkDiscounts{12, 20, 28}},
			{16, 15.85, 21.65, SupplierPrices{25.15, 20.75, 19.95, 24.25}, InStock, 1, BulkDiscounts{12, 20, 28}},
			{25, 24.85, 33.95, SupplierPrices{39.45, 32.55, 31.25, 38.05}, InStock, 1, BulkDiscounts{15, 25, 35}},
			{35, 34.65, 47.35, SupplierPrices{55.05, 45.45, 43.65, 53.15}, LowStock, 2, BulkDiscounts{15, 25, 35}},
			{50, 48.25, 65.95, SupplierPrices{76.65, 63.25, 60.75, 73.95}, LowStock, 3, BulkDiscounts{18, 28, 38}},
			{70, 72.45, 98.95, SupplierPrices{115.05, 94.95, 91.25, 111.05}, SpecialOrder, 7, BulkDiscounts{18, 28, 38}},
			{95, 96.85, 132.25, SupplierPrices{153.65, 126.95, 122.05, 148.35}, SpecialOrder, 7, BulkDiscounts{20, 30, 40}},
			{120, 125.45, 171.35, SupplierPrices{199.25, 164.55, 158.15, 192.35}, SpecialOrder, 10, BulkDiscounts{20, 30, 40}},
			{150, 156.85, 214.25, SupplierPrices{249.05, 205.85, 197.65, 240.35}, SpecialOrder, 14, BulkDiscounts{22, 32, 42}},
			{185, 195.25, 266.65, SupplierPrices{310.05, 256.25, 246.15, 299.25}, SpecialOrder, 14, BulkDiscounts{22, 32, 42}},
			{240, 254.85, 348.15, SupplierPrices{404.65, 334.25, 321.05, 390.55}, SpecialOrder, 21, BulkDiscounts{25, 35, 45}},
			{300, 325.45, 444.55, SupplierPrices{516.85, 427.25, 410.35, 498.95}, SpecialOrder, 21, BulkDiscounts{25, 35, 45}},
			{400, 425.65, 581.55, SupplierPrices{676.05, 558.85, 537.25, 652.35}, SpecialOrder, 28, BulkDiscounts{25, 35, 45}},
		},
	},
	"pvc-single": {
		Key:                  "pvc-single",
		Name:                 "PVC Single Core",
		Description:          "Single core PVC insulated cable - 6491X",
		TemperatureC:         70,
		VoltageRating:        600,
		MaxPracticalSizeMm2:  400,
		MinBendRadius:        4,
		FirePerformance:      FireStandard,
		MechanicalProtection: ProtectionNone,
		Methods:              []ReferenceMethod{MethodA1, MethodA2, MethodB1, MethodB2, MethodC, MethodE, MethodF, MethodG},
		Applications:         []string{
			"Consumer unit circuits in conduit",
			"Distribution board wiring",
			"Panel wiring",
			"Motor control circuits",
			"Switchgear connections",
		},
		Limitations: []string{
			"Requires conduit or trunking",
			"No mechanical protection",
			"Not suitable for direct burial",
			"Multiple cores needed for circuits",
		},
		Recommendations: []string{
			"Use in conduit or trunking systems",
			"Good for panel and switchgear wiring",
			"Cost-effective for multi-core installations",
		},
		rows: []capacityRow{
			{1, [10]float64{13, 15, 16, 19, 24, 0, 0, 26, 25, 28}, 44, 36.2},
			{1.5, [10]float64{16, 19, 20, 24, 31, 0, 0, 34, 32, 36}, 29, 24.2},
			{2.5, [10]float64{22, 26, 28, 33, 42, 0, 0, 46, 44, 49}, 18, 14.6},
			{4, [10]float64{29, 34, 37, 44, 56, 0, 0, 61, 58, 65}, 11, 9.2},
			{6, [10]float64{37, 44, 47, 56, 71, 0, 0, 78, 74, 83}, 7.3, 6.16},
			{10, [10]float64{51, 60, 64, 76, 96, 0, 0, 105, 100, 112}, 4.4, 3.66},
			{16, [10]float64{68, 80, 85, 101, 128, 0, 0, 140, 133, 149}, 2.8, 2.3},
			{25, [10]float64{89, 105, 112, 133, 168, 0, 0, 184, 175, 196}, 1.75, 1.454},
			{35, [10]float64{110, 130, 138, 164, 207, 0, 0, 227, 216, 242}, 1.25, 1.048},
			{50, [10]float64{134, 158, 168, 200, 252, 0, 0, 276, 263, 294}, 0.93, 0.774},
			{70, [10]float64{171, 203, 216, 257, 324, 0, 0, 355, 338, 378}, 0.64, 0.536},
			{95, [10]float64{209, 247, 263, 312, 393, 0, 0, 431, 410, 458}, 0.46, 0.386},
			{120, [10]float64{241, 285, 304, 361, 454, 0, 0, 498, 474, 530}, 0.37, 0.306},
			{150, [10]float64{275, 325, 347, 412, 519, 0, 0, 569, 542, 606}, 0.3, 0.248},
			{185, [10]float64{314, 371, 396, 470, 593, 0, 0, 650, 619, 692}, 0.24, 0.198},
			{240, [10]float64{364, 430, 459, 545, 687, 0, 0, 754, 717, 802}, 0.18, 0.15},
			{300, [10]float64{419, 495, 528, 627, 792, 0, 0, 868, 826, 924}, 0.145, 0.12},
			{400, [10]float64{486, 574, 613, 727, 918, 0, 0, 1007, 958, 1072}, 0.113, 0.094},
		},
		pricing: []CablePrice{
			{1, 0.35, 0.55, SupplierPrices{0.65, 0.5, 0.48, 0.62}, InStock, 0, BulkDiscounts{5, 12, 18}},
			{1.5, 0.45, 0.65, SupplierPrices{0.78, 0.6, 0.58, 0.75}, InStock, 0, BulkDiscounts{5, 12, 18}},
			{2.5, 0.65, 0.95, SupplierPrices{1.15, 0.88, 0.85, 1.1}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{4, 0.95, 1.35, SupplierPrices{1.65, 1.25, 1.2, 1.58}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{6, 1.35, 1.95, SupplierPrices{2.35, 1.8, 1.72, 2.25}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{10, 2.15, 3.05, SupplierPrices{3.65, 2.8, 2.7, 3.5}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{16, 3.25, 4.65, SupplierPrices{5.55, 4.25, 4.1, 5.35}, InStock, 1, BulkDiscounts{12, 20, 28}},
			{25, 4.85, 6.95, SupplierPrices{8.35, 6.35, 6.15, 8.05}, InStock, 1, BulkDiscounts{12, 20, 28}},
			{35, 6.85, 9.75, SupplierPrices{11.75, 8.95, 8.65, 11.35}, LowStock, 2, BulkDiscounts{15, 25, 35}},
			{50, 9.45, 13.45, SupplierPrices{16.25, 12.35, 11.95, 15.65}, LowStock, 3, BulkDiscounts{15, 25, 35}},
			{70, 14.25, 20.35, SupplierPrices{24.55, 18.65, 18.05, 23.65}, SpecialOrder, 7, BulkDiscounts{18, 28, 38}},
			{95, 18.95, 27.05, SupplierPrices{32.65, 24.85, 24.05, 31.45}, SpecialOrder, 7, BulkDiscounts{18, 28, 38}},
			{120, 24.45, 34.85, SupplierPrices{42.15, 32.05, 31.05, 40.65}, SpecialOrder, 10, BulkDiscounts{20, 30, 40}},
			{150, 30.85, 44.05, SupplierPrices{53.25, 40.45, 39.15, 51.35}, SpecialOrder, 14, BulkDiscounts{20, 30, 40}},
			{185, 38.25, 54.65, SupplierPrices{66.05, 50.15, 48.55, 63.65}, SpecialOrder, 14, BulkDiscounts{22, 32, 42}},
			{240, 49.85, 71.25, SupplierPrices{86.15, 65.45, 63.35, 83.05}, SpecialOrder, 21, BulkDiscounts{22, 32, 42}},
			{300, 63.45, 90.65, SupplierPrices{109.65, 83.25, 80.65, 105.85}, SpecialOrder, 21, BulkDiscounts{25, 35, 45}},
			{400, 82.85, 118.35, SupplierPrices{143.15, 108.75, 105.35, 138.05}, SpecialOrder, 28, BulkDiscounts{25, 35, 45}},
		},
	},
	"lsoh-cable": {
		Key:                  "lsoh-cable",
		Name:                 "LSOH Cable",
		Description:          "Low Smoke Zero Halogen cable - NH-VV",
		TemperatureC:         70,
		VoltageRating:        600,
		MaxPracticalSizeMm2:  300,
		MinBendRadius:        6,
		FirePerformance:      FireLSOH,
		MechanicalProtection: ProtectionLight,
		Methods:              []ReferenceMethod{MethodA1, MethodA2, MethodB1, MethodB2, MethodC, MethodE, MethodF, MethodG},
		Applications:         []string{
			"Schools and hospitals",
			"Public buildings",
			"High-rise residential",
			"Underground stations",
			"Areas with poor ventilation",
		},
		Limitations: []string{
			"Higher cost than standard PVC",
			"Limited supplier availability",
			"Requires specialist terminations",
		},
		Recommendations: []string{
			"Essential for fire safety critical areas",
			"Required by building regulations in some applications",
			"Consider for escape routes",
		},
		rows: []capacityRow{
			{1.5, [10]float64{16, 19, 20, 24, 31, 0, 0, 34, 32, 36}, 29, 24.2},
			{2.5, [10]float64{22, 26, 28, 33, 42, 0, 0, 46, 44, 49}, 18, 14.6},
			{4, [10]float64{29, 34, 37, 44, 56, 0, 0, 61, 58, 65}, 11, 9.2},
			{6, [10]float64{37, 44, 47, 56, 71, 0, 0, 78, 74, 83}, 7.3, 6.16},
			{10, [10]float64{51, 60, 64, 76, 96, 0, 0, 105, 100, 112}, 4.4, 3.66},
			{16, [10]float64{68, 80, 85, 101, 128, 0, 0, 140, 133, 149}, 2.8, 2.3},
			{25, [10]float64{89, 105, 112, 133, 168, 0, 0, 184, 175, 196}, 1.75, 1.454},
			{35, [10]float64{110, 130, 138, 164, 207, 0, 0, 227, 216, 242}, 1.25, 1.048},
			{50, [10]float64{134, 158, 168, 200, 252, 0, 0, 276, 263, 294}, 0.93, 0.774},
			{70, [10]float64{171, 203, 216, 257, 324, 0, 0, 355, 338, 378}, 0.64, 0.536},
			{95, [10]float64{209, 247, 263, 312, 393, 0, 0, 431, 410, 458}, 0.46, 0.386},
			{120, [10]float64{241, 285, 304, 361, 454, 0, 0, 498, 474, 530}, 0.37, 0.306},
			{150, [10]float64{275, 325, 347, 412, 519, 0, 0, 569, 542, 606}, 0.3, 0.248},
			{185, [10]float64{314, 371, 396, 470, 593, 0, 0, 650, 619, 692}, 0.24, 0.198},
			{240, [10]float64{364, 430, 459, 545, 687, 0, 0, 754, 717, 802}, 0.18, 0.15},
			{300, [10]float64{419, 495, 528, 627, 792, 0, 0, 868, 826, 924}, 0.145, 0.12},
		},
		pricing: []CablePrice{
			{1.5, 0.65, 0.95, SupplierPrices{1.15, 0.88, 0.85, 1.1}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{2.5, 0.95, 1.35, SupplierPrices{1.65, 1.25, 1.2, 1.58}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{4, 1.35, 1.95, SupplierPrices{2.35, 1.8, 1.72, 2.25}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{6, 1.95, 2.75, SupplierPrices{3.35, 2.55, 2.45, 3.2}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{10, 3.05, 4.35, SupplierPrices{5.25, 4, 3.85, 5.05}, InStock, 0, BulkDiscounts{12, 20, 28}},
			{16, 4.65, 6.65, SupplierPrices{8.05, 6.1, 5.9, 7.75}, InStock, 1, BulkDiscounts{12, 20, 28}},
			{25, 6.95, 9.95, SupplierPrices{12.05, 9.15, 8.85, 11.65}, LowStock, 2, BulkDiscounts{15, 25, 35}},
			{35, 9.85, 14.05, SupplierPrices{17.05, 12.95, 12.45, 16.45}, LowStock, 3, BulkDiscounts{15, 25, 35}},
			{50, 13.55, 19.35, SupplierPrices{23.45, 17.85, 17.15, 22.65}, SpecialOrder, 5, BulkDiscounts{18, 28, 38}},
			{70, 20.45, 29.25, SupplierPrices{35.45, 26.95, 25.95, 34.25}, SpecialOrder, 7, BulkDiscounts{18, 28, 38}},
			{95, 27.25, 38.95, SupplierPrices{47.25, 35.85, 34.55, 45.65}, SpecialOrder, 10, BulkDiscounts{20, 30, 40}},
			{120, 35.15, 50.25, SupplierPrices{60.95, 46.25, 44.65, 58.85}, SpecialOrder, 14, BulkDiscounts{20, 30, 40}},
			{150, 44.35, 63.45, SupplierPrices{76.95, 58.35, 56.25, 74.25}, SpecialOrder, 14, BulkDiscounts{22, 32, 42}},
			{185, 54.95, 78.65, SupplierPrices{95.45, 72.35, 69.85, 92.15}, SpecialOrder, 21, BulkDiscounts{22, 32, 42}},
			{240, 71.65, 102.45, SupplierPrices{124.35, 94.35, 91.05, 120.15}, SpecialOrder, 21, BulkDiscounts{25, 35, 45}},
			{300, 91.25, 130.45, SupplierPrices{158.35, 120.15, 115.95, 152.95}, SpecialOrder, 28, BulkDiscounts{25, 35, 45}},
		},
	},
	"fire-resistant": {
		Key:                  "fire-resistant",
		Name:                 "Fire Resistant Cable",
		Description:          "FP200 Fire Resistant Cable",
		TemperatureC:         90,
		VoltageRating:        300,
		MaxPracticalSizeMm2:  240,
		MinBendRadius:        8,
		FirePerformance:      FireResistant,
		MechanicalProtection: ProtectionMedium,
		Methods:              []ReferenceMethod{MethodA1, MethodA2, MethodB1, MethodB2, MethodC, MethodE, MethodF},
		Applications:         []string{
			"Fire alarm systems",
			"Emergency lighting",
			"Life safety systems",
			"Smoke extraction fans",
			"Fire suppression controls",
		},
		Limitations: []string{
			"Very high cost",
			"Limited size range",
			"Special termination requirements",
			"Long lead times",
		},
		Recommendations: []string{
			"Essential for fire safety circuits",
			"Required for systems that must operate during fire",
			"Consider for critical infrastructure",
		},
		rows: []capacityRow{
			{1.5, [10]float64{19, 22, 23, 28, 35, 0, 0, 39, 37, 0}, 29, 24.2},
			{2.5, [10]float64{25, 30, 32, 38, 48, 0, 0, 53, 50, 0}, 18, 14.6},
			{4, [10]float64{33, 39, 42, 50, 64, 0, 0, 70, 67, 0}, 11, 9.2},
			{6, [10]float64{43, 51, 54, 64, 81, 0, 0, 89, 85, 0}, 7.3, 6.16},
			{10, [10]float64{58, 69, 73, 87, 110, 0, 0, 121, 115, 0}, 4.4, 3.66},
			{16, [10]float64{78, 92, 98, 116, 147, 0, 0, 161, 153, 0}, 2.8, 2.3},
			{25, [10]float64{102, 121, 128, 152, 193, 0, 0, 212, 201, 0}, 1.75, 1.454},
			{35, [10]float64{126, 149, 158, 188, 238, 0, 0, 261, 248, 0}, 1.25, 1.048},
			{50, [10]float64{154, 182, 193, 230, 290, 0, 0, 318, 302, 0}, 0.93, 0.774},
			{70, [10]float64{196, 233, 248, 295, 372, 0, 0, 408, 388, 0}, 0.64, 0.536},
			{95, [10]float64{240, 284, 302, 359, 452, 0, 0, 496, 471, 0}, 0.46, 0.386},
			{120, [10]float64{277, 328, 349, 415, 522, 0, 0, 573, 544, 0}, 0.37, 0.306},
			{150, [10]float64{316, 374, 398, 473, 596, 0, 0, 654, 622, 0}, 0.3, 0.248},
			{185, [10]float64{361, 427, 455, 540, 681, 0, 0, 747, 711, 0}, 0.24, 0.198},
			{240, [10]float64{419, 495, 527, 627, 790, 0, 0, 867, 825, 0}, 0.18, 0.15},
		},
		pricing: []CablePrice{
			{1.5, 3.85, 5.45, SupplierPrices{6.65, 5.05, 4.85, 6.35}, LowStock, 3, BulkDiscounts{12, 20, 28}},
			{2.5, 5.65, 7.95, SupplierPrices{9.75, 7.35, 7.05, 9.35}, LowStock, 3, BulkDiscounts{12, 20, 28}},
			{4, 8.45, 11.95, SupplierPrices{14.65, 11.05, 10.65, 14.05}, SpecialOrder, 5, BulkDiscounts{15, 25, 35}},
			{6, 12.85, 18.15, SupplierPrices{22.35, 16.85, 16.15, 21.45}, SpecialOrder, 7, BulkDiscounts{15, 25, 35}},
			{10, 19.45, 27.45, SupplierPrices{33.85, 25.45, 24.45, 32.65}, SpecialOrder, 10, BulkDiscounts{18, 28, 38}},
			{16, 29.85, 42.15, SupplierPrices{51.95, 39.05, 37.55, 50.05}, SpecialOrder, 14, BulkDiscounts{18, 28, 38}},
			{25, 45.65, 64.45, SupplierPrices{79.55, 59.85, 57.55, 76.65}, SpecialOrder, 14, BulkDiscounts{20, 30, 40}},
			{35, 64.85, 91.65, SupplierPrices{113.15, 85.05, 81.75, 109.05}, SpecialOrder, 21, BulkDiscounts{20, 30, 40}},
			{50, 92.45, 130.65, SupplierPrices{161.35, 121.25, 116.55, 155.65}, SpecialOrder, 21, BulkDiscounts{22, 32, 42}},
			{70, 138.65, 195.95, SupplierPrices{242.05, 181.85, 174.85, 233.45}, SpecialOrder, 28, BulkDiscounts{22, 32, 42}},
			{95, 185.25, 261.85, SupplierPrices{323.45, 243.05, 233.65, 312.05}, SpecialOrder, 28, BulkDiscounts{25, 35, 45}},
			{120, 238.45, 337.05, SupplierPrices{416.25, 312.85, 300.85, 401.65}, SpecialOrder, 35, BulkDiscounts{25, 35, 45}},
			{150, 295.85, 418.45, SupplierPrices{516.85, 388.45, 373.45, 498.35}, SpecialOrder, 35, BulkDiscounts{25, 35, 45}},
			{185, 364.25, 514.85, SupplierPrices{635.85, 477.85, 459.45, 613.25}, SpecialOrder, 42, BulkDiscounts{28, 38, 48}},
			{240, 472.85, 668.85, SupplierPrices{826.05, 620.85, 596.85, 796.45}, SpecialOrder, 42, BulkDiscounts{28, 38, 48}},
		},
	},
	"micc": {
		Key:                  "micc",
		Name:                 "MICC (Mineral Insulated Copper Clad)",
		Description:          "Mineral insulated copper clad cable - BS 6207",
		TemperatureC:         90,
		VoltageRating:        750,
		MaxPracticalSizeMm2:  25,
		MinBendRadius:        6,
		FirePerformance:      FireMineral,
		MechanicalProtection: ProtectionHeavy,
		UVResistant:          true,
		DirectBurial:         true,
		Methods:              []ReferenceMethod{MethodC, MethodE, MethodF},
		Applications:         []string{
			"High-temperature environments (ovens, kilns)",
			"Fire pumps and emergency systems",
			"Industrial heating circuits",
			"Petrochemical installations",
			"Critical life safety systems",
			"Boiler house wiring",
		},
		Limitations: []string{
			"Very high cost compared to standard cables",
			"Requires special termination techniques",
			"Limited flexibility - difficult bending",
			"Skilled installation required",
		},
		Recommendations: []string{
			"Essential for temperatures above 90°C",
			"Use where fire resistance is critical",
			"Consider for emergency lighting circuits",
			"Ensure installers are MICC-trained",
		},
		rows: []capacityRow{
			{1, [10]float64{0, 0, 0, 0, 28, 0, 0, 32, 30, 0}, 44, 36.2},
			{1.5, [10]float64{0, 0, 0, 0, 37, 0, 0, 42, 40, 0}, 29, 24.2},
			{2.5, [10]float64{0, 0, 0, 0, 50, 0, 0, 57, 54, 0}, 18, 14.6},
			{4, [10]float64{0, 0, 0, 0, 68, 0, 0, 77, 73, 0}, 11, 9.2},
			{6, [10]float64{0, 0, 0, 0, 87, 0, 0, 98, 93, 0}, 7.3, 6.16},
			{10, [10]float64{0, 0, 0, 0, 118, 0, 0, 134, 127, 0}, 4.4, 3.66},
			{16, [10]float64{0, 0, 0, 0, 157, 0, 0, 178, 169, 0}, 2.8, 2.3},
			{25, [10]float64{0, 0, 0, 0, 202, 0, 0, 229, 217, 0}, 1.75, 1.454},
		},
		pricing: []CablePrice{
			{1, 8.45, 11.95, SupplierPrices{13.85, 11.25, 10.85, 13.35}, SpecialOrder, 7, BulkDiscounts{8, 15, 22}},
			{1.5, 10.25, 14.45, SupplierPrices{16.75, 13.65, 13.15, 16.15}, SpecialOrder, 7, BulkDiscounts{8, 15, 22}},
			{2.5, 13.85, 19.55, SupplierPrices{22.65, 18.45, 17.75, 21.85}, SpecialOrder, 10, BulkDiscounts{10, 18, 25}},
			{4, 18.95, 26.75, SupplierPrices{31.05, 25.25, 24.35, 29.95}, SpecialOrder, 10, BulkDiscounts{10, 18, 25}},
			{6, 24.85, 35.05, SupplierPrices{40.65, 33.15, 31.95, 39.25}, SpecialOrder, 14, BulkDiscounts{12, 20, 28}},
			{10, 32.45, 45.75, SupplierPrices{53.15, 43.25, 41.65, 51.25}, SpecialOrder, 14, BulkDiscounts{12, 20, 28}},
			{16, 42.85, 60.45, SupplierPrices{70.15, 57.25, 55.15, 67.75}, SpecialOrder, 21, BulkDiscounts{15, 25, 35}},
			{25, 56.25, 79.35, SupplierPrices{92.05, 75.15, 72.35, 88.95}, SpecialOrder, 21, BulkDiscounts{15, 25, 35}},
		},
	},
	"h07rn-f": {
		Key:                  "h07rn-f",
		Name:                 "H07RN-F (Heavy Duty Rubber Flexible)",
		Description:          "Rubber flexible cable for portable equipment - BS EN 50525-2-21",
		TemperatureC:         90,
		VoltageRating:        450,
		MaxPracticalSizeMm2:  50,
		MinBendRadius:        8,
		FirePerformance:      FireStandard,
		MechanicalProtection: ProtectionMedium,
		UVResistant:          true,
		Portable:             true,
		Applications:         []string{
			"Construction site temporary supplies",
			"Portable equipment and tools",
			"Generator connections",
			"Temporary lighting systems",
			"Mobile welding equipment",
			"Event and festival power",
		},
		Limitations: []string{
			"Not suitable for permanent installation",
			"Regular inspection required",
			"Higher voltage drop than fixed cables",
			"Not suitable for direct burial",
		},
		Recommendations: []string{
			"Ideal for temporary installations",
			"Use with RCD protection on construction sites",
			"Regular testing and inspection essential",
			"Store coiled cables properly to prevent damage",
		},
		rows: []capacityRow{
			{1, [10]float64{0, 0, 0, 0, 18, 0, 0, 20, 0, 0}, 44, 36.2},
			{1.5, [10]float64{0, 0, 0, 0, 23, 0, 0, 26, 0, 0}, 29, 24.2},
			{2.5, [10]float64{0, 0, 0, 0, 32, 0, 0, 36, 0, 0}, 18, 14.6},
			{4, [10]float64{0, 0, 0, 0, 43, 0, 0, 48, 0, 0}, 11, 9.2},
			{6, [10]float64{0, 0, 0, 0, 55, 0, 0, 62, 0, 0}, 7.3, 6.16},
			{10, [10]float64{0, 0, 0, 0, 75, 0, 0, 84, 0, 0}, 4.4, 3.66},
			{16, [10]float64{0, 0, 0, 0, 100, 0, 0, 112, 0, 0}, 2.8, 2.3},
			{25, [10]float64{0, 0, 0, 0, 128, 0, 0, 144, 0, 0}, 1.75, 1.454},
			{35, [10]float64{0, 0, 0, 0, 153, 0, 0, 172, 0, 0}, 1.25, 1.048},
			{50, [10]float64{0, 0, 0, 0, 184, 0, 0, 207, 0, 0}, 0.93, 0.774},
		},
		pricing: []CablePrice{
			{1, 2.85, 3.95, SupplierPrices{4.55, 3.75, 3.65, 4.35}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{1.5, 3.45, 4.75, SupplierPrices{5.45, 4.55, 4.35, 5.25}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{2.5, 4.65, 6.35, SupplierPrices{7.35, 6.05, 5.85, 7.05}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{4, 6.85, 9.35, SupplierPrices{10.85, 8.95, 8.65, 10.45}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{6, 9.45, 12.95, SupplierPrices{14.95, 12.35, 11.95, 14.45}, InStock, 0, BulkDiscounts{12, 20, 28}},
			{10, 14.25, 19.55, SupplierPrices{22.65, 18.65, 18.05, 21.85}, LowStock, 1, BulkDiscounts{12, 20, 28}},
			{16, 21.45, 29.35, SupplierPrices{34.05, 28.05, 27.15, 32.85}, LowStock, 2, BulkDiscounts{15, 25, 35}},
			{25, 32.85, 44.95, SupplierPrices{52.15, 43.05, 41.65, 50.35}, SpecialOrder, 3, BulkDiscounts{15, 25, 35}},
			{35, 45.25, 61.95, SupplierPrices{71.95, 59.35, 57.35, 69.45}, SpecialOrder, 7, BulkDiscounts{18, 28, 38}},
			{50, 62.85, 86.05, SupplierPrices{99.85, 82.35, 79.65, 96.35}, SpecialOrder, 7, BulkDiscounts{18, 28, 38}},
		},
	},
	"nyy-j": {
		Key:                  "nyy-j",
		Name:                 "NYY-J (European Harmonised Cable)",
		Description:          "European harmonised cable for fixed installations - BS EN 50525-1",
		TemperatureC:         90,
		VoltageRating:        1000,
		MaxPracticalSizeMm2:  400,
		MinBendRadius:        6,
		FirePerformance:      FireStandard,
		MechanicalProtection: ProtectionMedium,
		UVResistant:          true,
		DirectBurial:         true,
		Methods:              []ReferenceMethod{MethodC, MethodD1, MethodD2, MethodE, MethodF, MethodG},
		Applications:         []string{
			"Solar PV installations",
			"Electric vehicle charging points",
			"Ground source heat pump feeds",
			"Modern commercial installations",
			"Cost-effective alternative to SWA",
			"Renewable energy systems",
		},
		Limitations: []string{
			"Less mechanical protection than SWA",
			"Newer standard - some electricians unfamiliar",
			"May require specific approval on some sites",
		},
		Recommendations: []string{
			"Excellent cost-effective alternative to SWA",
			"Ideal for renewable energy installations",
			"Consider for EV charging installations",
			"15-20% cost saving over equivalent SWA",
		},
		rows: []capacityRow{
			{1.5, [10]float64{0, 0, 0, 0, 30, 23, 25, 34, 32, 36}, 29, 24.2},
			{2.5, [10]float64{0, 0, 0, 0, 40, 31, 34, 45, 43, 48}, 18, 14.6},
			{4, [10]float64{0, 0, 0, 0, 54, 42, 45, 60, 57, 64}, 11, 9.2},
			{6, [10]float64{0, 0, 0, 0, 69, 53, 58, 77, 73, 82}, 7.3, 6.16},
			{10, [10]float64{0, 0, 0, 0, 93, 71, 77, 104, 99, 111}, 4.4, 3.66},
			{16, [10]float64{0, 0, 0, 0, 124, 95, 102, 139, 132, 148}, 2.8, 2.3},
			{25, [10]float64{0, 0, 0, 0, 159, 121, 131, 178, 170, 190}, 1.75, 1.454},
			{35, [10]float64{0, 0, 0, 0, 190, 145, 156, 213, 203, 226}, 1.25, 1.048},
			{50, [10]float64{0, 0, 0, 0, 229, 174, 187, 257, 245, 273}, 0.93, 0.774},
			{70, [10]float64{0, 0, 0, 0, 293, 223, 240, 329, 313, 348}, 0.64, 0.536},
			{95, [10]float64{0, 0, 0, 0, 354, 269, 290, 397, 378, 421}, 0.46, 0.386},
			{120, [10]float64{0, 0, 0, 0, 407, 310, 334, 457, 435, 484}, 0.37, 0.306},
			{150, [10]float64{0, 0, 0, 0, 463, 353, 380, 520, 495, 551}, 0.3, 0.248},
			{185, [10]float64{0, 0, 0, 0, 526, 401, 431, 590, 562, 625}, 0.24, 0.198},
			{240, [10]float64{0, 0, 0, 0, 605, 461, 496, 679, 646, 719}, 0.18, 0.15},
			{300, [10]float64{0, 0, 0, 0, 697, 531, 571, 782, 744, 828}, 0.145, 0.12},
			{400, [10]float64{0, 0, 0, 0, 807, 615, 662, 906, 862, 959}, 0.113, 0.094},
		},
		pricing: []CablePrice{
			{1.5, 2.05, 2.85, SupplierPrices{3.25, 2.7, 2.6, 3.15}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{2.5, 2.75, 3.75, SupplierPrices{4.35, 3.6, 3.45, 4.15}, InStock, 0, BulkDiscounts{8, 15, 22}},
			{4, 3.95, 5.35, SupplierPrices{6.25, 5.15, 4.95, 6.05}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{6, 5.85, 7.95, SupplierPrices{9.25, 7.65, 7.35, 8.95}, InStock, 0, BulkDiscounts{10, 18, 25}},
			{10, 8.85, 12.05, SupplierPrices{14.05, 11.55, 11.15, 13.55}, InStock, 0, BulkDiscounts{12, 20, 28}},
			{16, 13.45, 18.35, SupplierPrices{21.35, 17.65, 16.95, 20.65}, InStock, 1, BulkDiscounts{12, 20, 28}},
			{25, 21.15, 28.85, SupplierPrices{33.55, 27.65, 26.65, 32.35}, LowStock, 1, BulkDiscounts{15, 25, 35}},
			{35, 29.45, 40.25, SupplierPrices{46.75, 38.55, 37.15, 45.15}, LowStock, 2, BulkDiscounts{15, 25, 35}},
			{50, 41.05, 56.05, SupplierPrices{65.15, 53.75, 51.75, 62.95}, SpecialOrder, 3, BulkDiscounts{18, 28, 38}},
			{70, 61.65, 84.25, SupplierPrices{97.95, 80.85, 77.85, 94.65}, SpecialOrder, 7, BulkDiscounts{18, 28, 38}},
			{95, 82.35, 112.55, SupplierPrices{130.75, 107.95, 103.95, 126.35}, SpecialOrder, 7, BulkDiscounts{20, 30, 40}},
			{120, 106.65, 145.75, SupplierPrices{169.35, 139.85, 134.65, 163.65}, SpecialOrder, 10, BulkDiscounts{20, 30, 40}},
			{150, 133.35, 182.25, SupplierPrices{211.85, 174.95, 168.45, 204.75}, SpecialOrder, 14, BulkDiscounts{22, 32, 42}},
			{185, 166.05, 226.85, SupplierPrices{263.75, 217.75, 209.65, 254.95}, SpecialOrder, 14, BulkDiscounts{22, 32, 42}},
			{240, 216.65, 296.05, SupplierPrices{343.95, 284.05, 273.65, 332.55}, SpecialOrder, 21, BulkDiscounts{25, 35, 45}},
			{300, 276.65, 378.05, SupplierPrices{439.35, 362.95, 349.35, 424.75}, SpecialOrder, 21, BulkDiscounts{25, 35, 45}},
			{400, 361.85, 494.55, SupplierPrices{574.85, 474.85, 457.35, 555.95}, SpecialOrder, 28, BulkDiscounts{25, 35, 45}},
		},
	},
}
