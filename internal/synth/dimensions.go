package synth

import (
	"fmt"
	"strings"
	"time"
)

// businessID builds the fixed-width alphanumeric identifier column that
// accompanies each surrogate key.
func businessID(prefix string, sk int64) string {
	return fmt.Sprintf("%s%012d", prefix, sk)
}

const isoDate = "2006-01-02"

// Holidays the calendar marks; observed-date shifting is not modeled.
func isHoliday(t time.Time) bool {
	switch {
	case t.Month() == time.January && t.Day() == 1:
		return true
	case t.Month() == time.July && t.Day() == 4:
		return true
	case t.Month() == time.November && t.Day() >= 22 && t.Day() <= 28 && t.Weekday() == time.Thursday:
		return true
	case t.Month() == time.December && t.Day() == 25:
		return true
	}
	return false
}

func (r *run) dateDimRow(sk int64) ([]string, error) {
	d := r.cal.date(sk)
	year := int64(d.Year())
	moy := int64(d.Month())
	dom := int64(d.Day())
	dow := int64(d.Weekday())
	qoy := (moy-1)/3 + 1

	monthSeq := (year-1990)*12 + moy - 1
	weekSeq := (sk-1)/7 + (year-1990)*52
	quarterSeq := (year-1990)*4 + qoy - 1

	firstDOM := r.cal.clampSK(sk - dom + 1)
	daysInMonth := int64(time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day())
	lastDOM := r.cal.clampSK(sk - dom + daysInMonth)

	sameDayLY := ""
	if sk > 365 {
		sameDayLY = itoa(sk - 365)
	}
	sameDayLQ := ""
	if sk > 91 {
		sameDayLQ = itoa(sk - 91)
	}

	weekend := d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
	followingHoliday := isHoliday(d.AddDate(0, 0, -1))

	// Monday-based index into dayNames.
	dayIdx := (int(d.Weekday()) + 6) % 7

	return []string{
		itoa(sk),
		businessID("DATE", sk),
		d.Format(isoDate),
		itoa(monthSeq),
		itoa(weekSeq),
		itoa(quarterSeq),
		itoa(year),
		itoa(dow),
		itoa(moy),
		itoa(dom),
		itoa(qoy),
		itoa(year), // fiscal year tracks calendar year
		itoa(quarterSeq),
		itoa(weekSeq),
		dayNames[dayIdx],
		fmt.Sprintf("%dQ%d", year, qoy),
		ynFlag(isHoliday(d)),
		ynFlag(weekend),
		ynFlag(followingHoliday),
		itoa(firstDOM),
		itoa(lastDOM),
		sameDayLY,
		sameDayLQ,
		"N", "N", "N", "N", "N",
	}, nil
}

// Time slots advance in 15-minute steps so even the reduced test calendar
// spans multiple shifts.
func (r *run) timeDimRow(sk int64) ([]string, error) {
	secs := (sk - 1) * 900
	hour := secs / 3600
	minute := (secs % 3600) / 60
	second := secs % 60

	amPM := "AM"
	if hour >= 12 {
		amPM = "PM"
	}

	var shift, subShift string
	switch {
	case hour < 6:
		shift, subShift = "third", "night"
	case hour < 12:
		shift, subShift = "first", "morning"
	case hour < 18:
		shift, subShift = "second", "afternoon"
	default:
		shift, subShift = "third", "evening"
	}

	mealTime := ""
	switch {
	case hour >= 6 && hour < 9:
		mealTime = "breakfast"
	case hour >= 11 && hour < 13:
		mealTime = "lunch"
	case hour >= 17 && hour < 20:
		mealTime = "dinner"
	}

	return []string{
		itoa(sk),
		businessID("TIME", sk),
		itoa(secs),
		itoa(hour),
		itoa(minute),
		itoa(second),
		amPM,
		shift,
		subShift,
		mealTime,
	}, nil
}

func (r *run) customerDemographicsRow(sk int64) ([]string, error) {
	genders := []string{"M", "F"}
	maritals := []string{"S", "M", "D", "W", "U"}
	return []string{
		itoa(sk),
		pick(r.rng, genders),
		pick(r.rng, maritals),
		pick(r.rng, educationLevels),
		itoaInt((r.rng.Intn(20) + 1) * 500),
		pick(r.rng, creditRatings),
		itoaInt(r.rng.Intn(7)),
		itoaInt(r.rng.Intn(7)),
		itoaInt(r.rng.Intn(7)),
	}, nil
}

func (r *run) customerAddressRow(sk int64) ([]string, error) {
	reg := region(sk)
	state := stateIn(r.rng, reg)
	city := pick(r.rng, cities)

	suite := ""
	if r.rng.Intn(3) == 0 {
		suite = "Suite " + itoaInt(r.rng.Intn(400)+100)
	}

	return []string{
		itoa(sk),
		businessID("ADDR", sk),
		itoaInt(r.rng.Intn(999) + 1),
		pick(r.rng, streetNames),
		pick(r.rng, streetTypes),
		suite,
		city,
		city + " County",
		state,
		fmt.Sprintf("%05d", r.rng.Intn(90000)+10000),
		"United States",
		offset(gmtOffset(state)),
		pick(r.rng, locationTypes),
	}, nil
}

func (r *run) incomeBandRow(sk int64) ([]string, error) {
	band := incomeBands[(sk-1)%int64(len(incomeBands))]
	return []string{
		itoa(sk),
		itoaInt(band[0]),
		itoaInt(band[1]),
	}, nil
}

func (r *run) householdDemographicsRow(sk int64) ([]string, error) {
	bandSK, err := r.sample("income_band")
	if err != nil {
		return nil, err
	}
	return []string{
		itoa(sk),
		itoa(bandSK),
		pick(r.rng, buyPotentials),
		itoaInt(r.rng.Intn(10)),
		itoaInt(r.rng.Intn(5)),
	}, nil
}

func (r *run) itemRow(sk int64) ([]string, error) {
	catIdx := r.rng.Intn(len(categories))
	category := categories[catIdx]
	classIdx := r.rng.Intn(len(subcategories[category]))
	class := subcategories[category][classIdx]
	brandIdx := r.rng.Intn(len(brands[category]))
	brand := brands[category][brandIdx]

	band := priceBands[category]
	price := uniformMoney(r.rng, float64(band[0]), float64(band[1]))
	wholesale := uniformMoney(r.rng, price*0.4, price*0.7)

	manufactID := r.rng.Intn(1000) + 1
	desc := fmt.Sprintf("%s %s %s for everyday use", brand, pick(r.rng, colors), strings.ToLower(class))

	return []string{
		itoa(sk),
		businessID("ITEM", sk),
		r.cal.start.Format(isoDate),
		"",
		desc,
		money(price),
		money(wholesale),
		itoaInt((catIdx+1)*1000 + brandIdx + 1),
		brand,
		itoaInt(classIdx + 1),
		class,
		itoaInt(catIdx + 1),
		category,
		itoaInt(manufactID),
		fmt.Sprintf("Manufacturer#%d", manufactID),
		pick(r.rng, sizes),
		fmt.Sprintf("%08d", r.rng.Intn(100000000)),
		pick(r.rng, colors),
		pick(r.rng, units),
		pick(r.rng, containers),
		itoaInt(r.rng.Intn(100) + 1),
		fmt.Sprintf("%s %s", brand, class),
	}, nil
}

func (r *run) storeRow(sk int64) ([]string, error) {
	reg := region(sk)
	state := stateIn(r.rng, reg)
	city := pick(r.rng, cities)

	hours := "8AM-10PM"
	if r.rng.Intn(4) == 0 {
		hours = "8AM-12AM"
	}

	return []string{
		itoa(sk),
		businessID("STOR", sk),
		r.cal.start.Format(isoDate),
		"",
		"", // still open
		city + " Store",
		itoaInt(r.rng.Intn(250) + 50),
		itoaInt(r.rng.Intn(90000) + 10000),
		hours,
		fullName(r.rng),
		itoaInt(r.rng.Intn(10) + 1),
		"Unknown",
		fmt.Sprintf("%s region retail market", reg),
		fullName(r.rng),
		itoaInt(r.rng.Intn(5) + 1),
		reg + " Division",
		"1",
		"Main Retail Co",
		itoaInt(r.rng.Intn(999) + 1),
		pick(r.rng, streetNames),
		pick(r.rng, streetTypes),
		"Suite " + itoaInt(r.rng.Intn(400)+100),
		city,
		city + " County",
		state,
		fmt.Sprintf("%05d", r.rng.Intn(90000)+10000),
		"United States",
		offset(gmtOffset(state)),
		rate(float64(r.rng.Intn(1100)) / 10000),
	}, nil
}

func (r *run) warehouseRow(sk int64) ([]string, error) {
	reg := region(sk)
	state := stateIn(r.rng, reg)
	city := pick(r.rng, cities)
	return []string{
		itoa(sk),
		businessID("WARE", sk),
		fmt.Sprintf("%s Distribution Center", reg),
		itoaInt(r.rng.Intn(900000) + 100000),
		itoaInt(r.rng.Intn(999) + 1),
		pick(r.rng, streetNames),
		pick(r.rng, streetTypes),
		"",
		city,
		city + " County",
		state,
		fmt.Sprintf("%05d", r.rng.Intn(90000)+10000),
		"United States",
		offset(gmtOffset(state)),
	}, nil
}

func (r *run) shipModeRow(sk int64) ([]string, error) {
	m := shipModes[(sk-1)%int64(len(shipModes))]
	return []string{
		itoa(sk),
		businessID("SHIP", sk),
		m.kind,
		m.code,
		m.carrier,
		fmt.Sprintf("contract-%d", sk),
	}, nil
}

func (r *run) reasonRow(sk int64) ([]string, error) {
	return []string{
		itoa(sk),
		businessID("RSON", sk),
		returnReasons[(sk-1)%int64(len(returnReasons))],
	}, nil
}

func (r *run) promotionRow(sk int64) ([]string, error) {
	dates, err := r.pool("date_dim")
	if err != nil {
		return nil, err
	}
	start := dates.Sample(r.rng)
	end := dates.Clamp(start + int64(r.rng.Intn(90)+14))

	itemSK, err := r.sampleNullable("item", 0.2)
	if err != nil {
		return nil, err
	}

	channels := make([]string, 8)
	for i := range channels {
		channels[i] = ynFlag(r.rng.Intn(2) == 0)
	}

	return []string{
		itoa(sk),
		businessID("PROM", sk),
		itoa(start),
		itoa(end),
		itemSK,
		money(uniformMoney(r.rng, 500, 10000)),
		itoaInt(r.rng.Intn(5) + 1),
		fmt.Sprintf("Promotion %d", sk),
		channels[0], channels[1], channels[2], channels[3],
		channels[4], channels[5], channels[6], channels[7],
		"Targeted seasonal campaign",
		"Unknown",
		ynFlag(r.rng.Intn(2) == 0),
	}, nil
}

func (r *run) customerRow(sk int64) ([]string, error) {
	cdemo, err := r.sample("customer_demographics")
	if err != nil {
		return nil, err
	}
	hdemo, err := r.sample("household_demographics")
	if err != nil {
		return nil, err
	}
	addr, err := r.sample("customer_address")
	if err != nil {
		return nil, err
	}
	dates, err := r.pool("date_dim")
	if err != nil {
		return nil, err
	}
	firstSales := dates.Sample(r.rng)
	firstShipTo := dates.Clamp(firstSales + int64(r.rng.Intn(30)))
	lastReview := dates.Sample(r.rng)

	first := pick(r.rng, firstNames)
	last := pick(r.rng, lastNames)
	email := fmt.Sprintf("%s.%s.%d@example.com",
		strings.ToLower(first), strings.ToLower(last), sk)

	return []string{
		itoa(sk),
		businessID("CUST", sk),
		itoa(cdemo),
		itoa(hdemo),
		itoa(addr),
		itoa(firstShipTo),
		itoa(firstSales),
		pick(r.rng, salutations),
		first,
		last,
		ynFlag(r.rng.Intn(2) == 0),
		itoaInt(r.rng.Intn(28) + 1),
		itoaInt(r.rng.Intn(12) + 1),
		itoaInt(r.rng.Intn(66) + 1940),
		"United States",
		"",
		email,
		itoa(lastReview),
	}, nil
}

func (r *run) callCenterRow(sk int64) ([]string, error) {
	open, err := r.sample("date_dim")
	if err != nil {
		return nil, err
	}

	reg := region(sk)
	state := stateIn(r.rng, reg)
	city := pick(r.rng, cities)

	return []string{
		itoa(sk),
		businessID("CCTR", sk),
		r.cal.start.Format(isoDate),
		"",
		"", // still open
		itoa(open),
		fmt.Sprintf("%s Customer Service Center", reg),
		"large",
		itoaInt(r.rng.Intn(150) + 50),
		itoaInt(r.rng.Intn(35000) + 15000),
		"24x7",
		fullName(r.rng),
		itoa(sk),
		"regional",
		fmt.Sprintf("%s customer service market", reg),
		fullName(r.rng),
		"1",
		"Customer Service Division",
		"1",
		"Main Retail Co",
		itoaInt(r.rng.Intn(999) + 1),
		pick(r.rng, streetNames),
		pick(r.rng, streetTypes),
		"Floor " + itoaInt(r.rng.Intn(10)+1),
		city,
		city + " County",
		state,
		fmt.Sprintf("%05d", r.rng.Intn(90000)+10000),
		"United States",
		offset(gmtOffset(state)),
		rate(float64(r.rng.Intn(700)+500) / 10000),
	}, nil
}

// Web pages map onto the category/subcategory catalog, one per pair.
func (r *run) webPageRow(sk int64) ([]string, error) {
	creation, err := r.sample("date_dim")
	if err != nil {
		return nil, err
	}
	access, err := r.sample("date_dim")
	if err != nil {
		return nil, err
	}

	idx := (sk - 1) % int64(len(categories)*5)
	category := categories[idx/5]
	subs := subcategories[category]
	sub := subs[int(idx)%len(subs)]

	return []string{
		itoa(sk),
		businessID("PAGE", sk),
		r.cal.start.Format(isoDate),
		"",
		itoa(creation),
		itoa(access),
		ynFlag(r.rng.Intn(2) == 0),
		"", // category pages belong to no customer
		fmt.Sprintf("http://www.retailcorp.com/%s/%s.html",
			strings.ToLower(category), strings.ToLower(strings.ReplaceAll(sub, " ", "-"))),
		"category",
		itoaInt(r.rng.Intn(4000) + 1000),
		itoaInt(r.rng.Intn(21) + 5),
		itoaInt(r.rng.Intn(13) + 3),
		itoaInt(r.rng.Intn(5) + 1),
	}, nil
}

func (r *run) catalogPageRow(sk int64) ([]string, error) {
	dates, err := r.pool("date_dim")
	if err != nil {
		return nil, err
	}
	start := dates.Sample(r.rng)
	end := dates.Clamp(start + int64(r.rng.Intn(120)+30))

	category := categories[(sk-1)%int64(len(categories))]

	return []string{
		itoa(sk),
		businessID("CATP", sk),
		itoa(start),
		itoa(end),
		category,
		itoaInt(r.rng.Intn(100) + 1),
		itoaInt(r.rng.Intn(200) + 1),
		fmt.Sprintf("%s catalog page", category),
		"seasonal",
	}, nil
}

func (r *run) webSiteRow(sk int64) ([]string, error) {
	dates, err := r.pool("date_dim")
	if err != nil {
		return nil, err
	}
	open := dates.Sample(r.rng)

	reg := region(sk)
	state := stateIn(r.rng, reg)
	city := pick(r.rng, cities)

	return []string{
		itoa(sk),
		businessID("SITE", sk),
		r.cal.start.Format(isoDate),
		"",
		fmt.Sprintf("site_%d", sk),
		itoa(open),
		"", // still open
		"Unknown",
		fullName(r.rng),
		itoaInt(r.rng.Intn(10) + 1),
		"Unknown",
		"Online retail storefront",
		fullName(r.rng),
		"1",
		"Main Retail Co",
		itoaInt(r.rng.Intn(999) + 1),
		pick(r.rng, streetNames),
		pick(r.rng, streetTypes),
		"Suite " + itoaInt(r.rng.Intn(400)+100),
		city,
		city + " County",
		state,
		fmt.Sprintf("%05d", r.rng.Intn(90000)+10000),
		"United States",
		offset(gmtOffset(state)),
		rate(float64(r.rng.Intn(1100)) / 10000),
	}, nil
}
