package synth

// salesPricing holds the per-unit and extended amounts shared by the sales
// fact synthesizers. Extended amounts are quantity times the unit amount;
// net profit can go negative when the discount eats the margin.
type salesPricing struct {
	quantity                              int64
	wholesale, list, sales                float64
	extDiscount, extSales, extWholesale   float64
	extList, extTax, coupon               float64
	netPaid, netPaidIncTax, netProfit     float64
}

func (r *run) pricing() salesPricing {
	qty := int64(r.rng.Intn(100) + 1)
	list := uniformMoney(r.rng, 1, 300)
	wholesale := uniformMoney(r.rng, list*0.4, list*0.7)
	sales := uniformMoney(r.rng, wholesale, list)
	fq := float64(qty)

	p := salesPricing{
		quantity:     qty,
		wholesale:    wholesale,
		list:         list,
		sales:        sales,
		extDiscount:  round2((list - sales) * fq),
		extSales:     round2(sales * fq),
		extWholesale: round2(wholesale * fq),
		extList:      round2(list * fq),
	}
	p.extTax = round2(p.extSales * 0.08)
	if r.rng.Intn(5) == 0 {
		p.coupon = round2(p.extSales * 0.1)
	}
	p.netPaid = round2(p.extSales - p.coupon)
	p.netPaidIncTax = round2(p.netPaid + p.extTax)
	p.netProfit = round2(p.netPaid - p.extWholesale)
	return p
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// customerKeys draws the customer-side foreign keys shared by the sales and
// returns facts.
func (r *run) customerKeys() (customer, cdemo, hdemo, addr int64, err error) {
	if customer, err = r.sample("customer"); err != nil {
		return
	}
	if cdemo, err = r.sample("customer_demographics"); err != nil {
		return
	}
	if hdemo, err = r.sample("household_demographics"); err != nil {
		return
	}
	addr, err = r.sample("customer_address")
	return
}

func (r *run) storeSalesRow(sk int64) ([]string, error) {
	soldDate, err := r.sample("date_dim")
	if err != nil {
		return nil, err
	}
	soldTime, err := r.sample("time_dim")
	if err != nil {
		return nil, err
	}
	item, err := r.sample("item")
	if err != nil {
		return nil, err
	}
	customer, cdemo, hdemo, addr, err := r.customerKeys()
	if err != nil {
		return nil, err
	}
	store, err := r.sample("store")
	if err != nil {
		return nil, err
	}
	promo, err := r.sampleNullable("promotion", 0.35)
	if err != nil {
		return nil, err
	}

	p := r.pricing()
	return []string{
		itoa(soldDate),
		itoa(soldTime),
		itoa(item),
		itoa(customer),
		itoa(cdemo),
		itoa(hdemo),
		itoa(addr),
		itoa(store),
		promo,
		itoa(sk), // ticket number
		itoa(p.quantity),
		money(p.wholesale),
		money(p.list),
		money(p.sales),
		money(p.extDiscount),
		money(p.extSales),
		money(p.extWholesale),
		money(p.extList),
		money(p.extTax),
		money(p.coupon),
		money(p.netPaid),
		money(p.netPaidIncTax),
		money(p.netProfit),
	}, nil
}

// storeReturnsRow samples the same pools the sales fact does; tickets are
// drawn from the range of ticket numbers store_sales emits, since sales rows
// are never retained past writing.
func (r *run) storeReturnsRow(sk int64) ([]string, error) {
	retDate, err := r.sample("date_dim")
	if err != nil {
		return nil, err
	}
	retTime, err := r.sample("time_dim")
	if err != nil {
		return nil, err
	}
	item, err := r.sample("item")
	if err != nil {
		return nil, err
	}
	customer, cdemo, hdemo, addr, err := r.customerKeys()
	if err != nil {
		return nil, err
	}
	store, err := r.sample("store")
	if err != nil {
		return nil, err
	}
	reason, err := r.sample("reason")
	if err != nil {
		return nil, err
	}

	ticket := r.rng.Int63n(r.counts["store_sales"]) + 1
	qty := int64(r.rng.Intn(10) + 1)
	amt := round2(uniformMoney(r.rng, 1, 300) * float64(qty))
	tax := round2(amt * 0.08)
	fee := uniformMoney(r.rng, 0, 50)
	shipCost := uniformMoney(r.rng, 0, 30)

	refunded := round2(amt * 0.6)
	reversed := round2(amt * 0.3)
	credit := round2(amt - refunded - reversed)

	return []string{
		itoa(retDate),
		itoa(retTime),
		itoa(item),
		itoa(customer),
		itoa(cdemo),
		itoa(hdemo),
		itoa(addr),
		itoa(store),
		itoa(reason),
		itoa(ticket),
		itoa(qty),
		money(amt),
		money(tax),
		money(amt + tax),
		money(fee),
		money(shipCost),
		money(refunded),
		money(reversed),
		money(credit),
		money(round2(fee + shipCost)),
	}, nil
}

func (r *run) webSalesRow(sk int64) ([]string, error) {
	dates, err := r.pool("date_dim")
	if err != nil {
		return nil, err
	}
	soldDate := dates.Sample(r.rng)
	shipDate := dates.Clamp(soldDate + int64(r.rng.Intn(14)+1))

	soldTime, err := r.sample("time_dim")
	if err != nil {
		return nil, err
	}
	item, err := r.sample("item")
	if err != nil {
		return nil, err
	}
	billCust, billCdemo, billHdemo, billAddr, err := r.customerKeys()
	if err != nil {
		return nil, err
	}
	shipCust, shipCdemo, shipHdemo, shipAddr, err := r.customerKeys()
	if err != nil {
		return nil, err
	}
	site, err := r.sample("web_site")
	if err != nil {
		return nil, err
	}
	page, err := r.sample("web_page")
	if err != nil {
		return nil, err
	}
	shipMode, err := r.sample("ship_mode")
	if err != nil {
		return nil, err
	}
	warehouse, err := r.sample("warehouse")
	if err != nil {
		return nil, err
	}
	promo, err := r.sampleNullable("promotion", 0.35)
	if err != nil {
		return nil, err
	}

	p := r.pricing()
	shipCost := round2(uniformMoney(r.rng, 1, 20) * float64(p.quantity))

	return []string{
		itoa(soldDate),
		itoa(soldTime),
		itoa(shipDate),
		itoa(item),
		itoa(billCust),
		itoa(billCdemo),
		itoa(billHdemo),
		itoa(billAddr),
		itoa(shipCust),
		itoa(shipCdemo),
		itoa(shipHdemo),
		itoa(shipAddr),
		itoa(page),
		itoa(site),
		itoa(shipMode),
		itoa(warehouse),
		promo,
		itoa(sk), // order number
		itoa(p.quantity),
		money(p.wholesale),
		money(p.list),
		money(p.sales),
		money(p.extDiscount),
		money(p.extSales),
		money(p.extWholesale),
		money(p.extList),
		money(p.extTax),
		money(p.coupon),
		money(shipCost),
		money(p.netPaid),
		money(p.netPaidIncTax),
		money(round2(p.netPaid + shipCost)),
		money(round2(p.netPaidIncTax + shipCost)),
		money(p.netProfit),
	}, nil
}

// Catalog orders carry no time-of-day key; the channel is batch-driven.
func (r *run) catalogSalesRow(sk int64) ([]string, error) {
	dates, err := r.pool("date_dim")
	if err != nil {
		return nil, err
	}
	soldDate := dates.Sample(r.rng)
	shipDate := dates.Clamp(soldDate + int64(r.rng.Intn(12)+3))

	item, err := r.sample("item")
	if err != nil {
		return nil, err
	}
	billCust, billCdemo, billHdemo, billAddr, err := r.customerKeys()
	if err != nil {
		return nil, err
	}
	shipCdemo, err := r.sample("customer_demographics")
	if err != nil {
		return nil, err
	}
	shipHdemo, err := r.sample("household_demographics")
	if err != nil {
		return nil, err
	}
	shipAddr, err := r.sample("customer_address")
	if err != nil {
		return nil, err
	}
	callCenter, err := r.sample("call_center")
	if err != nil {
		return nil, err
	}
	catalogPage, err := r.sample("catalog_page")
	if err != nil {
		return nil, err
	}
	shipMode, err := r.sample("ship_mode")
	if err != nil {
		return nil, err
	}
	warehouse, err := r.sample("warehouse")
	if err != nil {
		return nil, err
	}
	promo, err := r.sampleNullable("promotion", 0.75)
	if err != nil {
		return nil, err
	}

	p := r.pricing()
	shipCost := uniformMoney(r.rng, 8, 35)

	return []string{
		itoa(soldDate),
		"", // no time key for catalog orders
		itoa(shipDate),
		itoa(billCust),
		itoa(billCdemo),
		itoa(billHdemo),
		itoa(billAddr),
		itoa(billCust), // billed and shipped to the same customer
		itoa(shipCdemo),
		itoa(shipHdemo),
		itoa(shipAddr),
		itoa(callCenter),
		itoa(catalogPage),
		itoa(shipMode),
		itoa(warehouse),
		itoa(item),
		promo,
		itoa(sk), // order number
		itoa(p.quantity),
		money(p.wholesale),
		money(p.list),
		money(p.sales),
		money(p.extDiscount),
		money(p.extSales),
		money(p.extWholesale),
		money(p.extList),
		money(p.extTax),
		money(p.coupon),
		money(shipCost),
		money(p.netPaid),
		money(p.netPaidIncTax),
		money(round2(p.netPaid + shipCost)),
		money(round2(p.netPaidIncTax + shipCost)),
		money(p.netProfit),
	}, nil
}

func (r *run) catalogReturnsRow(sk int64) ([]string, error) {
	retDate, err := r.sample("date_dim")
	if err != nil {
		return nil, err
	}
	item, err := r.sample("item")
	if err != nil {
		return nil, err
	}
	refCust, refCdemo, refHdemo, refAddr, err := r.customerKeys()
	if err != nil {
		return nil, err
	}
	retCust, retCdemo, retHdemo, retAddr, err := r.customerKeys()
	if err != nil {
		return nil, err
	}
	callCenter, err := r.sample("call_center")
	if err != nil {
		return nil, err
	}
	catalogPage, err := r.sample("catalog_page")
	if err != nil {
		return nil, err
	}
	shipMode, err := r.sample("ship_mode")
	if err != nil {
		return nil, err
	}
	warehouse, err := r.sample("warehouse")
	if err != nil {
		return nil, err
	}
	reason, err := r.sample("reason")
	if err != nil {
		return nil, err
	}

	order := r.rng.Int63n(r.counts["catalog_sales"]) + 1
	qty := int64(r.rng.Intn(4) + 1)
	amt := round2(uniformMoney(r.rng, 5, 400) * float64(qty))
	tax := round2(amt * 0.07)
	fee := uniformMoney(r.rng, 3, 10)
	shipCost := uniformMoney(r.rng, 2, 25)

	refunded := round2(amt * 0.85)
	reversed := round2(amt * 0.15)
	credit := round2(amt * 0.05)

	return []string{
		itoa(retDate),
		"", // returns are processed in batches, no time key
		itoa(item),
		itoa(refCust),
		itoa(refCdemo),
		itoa(refHdemo),
		itoa(refAddr),
		itoa(retCust),
		itoa(retCdemo),
		itoa(retHdemo),
		itoa(retAddr),
		itoa(callCenter),
		itoa(catalogPage),
		itoa(shipMode),
		itoa(warehouse),
		itoa(reason),
		itoa(order),
		itoa(qty),
		money(amt),
		money(tax),
		money(amt + tax),
		money(fee),
		money(shipCost),
		money(refunded),
		money(reversed),
		money(credit),
		money(round2(fee + shipCost)),
	}, nil
}

func (r *run) webReturnsRow(sk int64) ([]string, error) {
	retDate, err := r.sample("date_dim")
	if err != nil {
		return nil, err
	}
	retTime, err := r.sample("time_dim")
	if err != nil {
		return nil, err
	}
	item, err := r.sample("item")
	if err != nil {
		return nil, err
	}
	refCust, refCdemo, refHdemo, refAddr, err := r.customerKeys()
	if err != nil {
		return nil, err
	}
	retCust, retCdemo, retHdemo, retAddr, err := r.customerKeys()
	if err != nil {
		return nil, err
	}
	page, err := r.sample("web_page")
	if err != nil {
		return nil, err
	}
	reason, err := r.sample("reason")
	if err != nil {
		return nil, err
	}

	order := r.rng.Int63n(r.counts["web_sales"]) + 1
	qty := int64(r.rng.Intn(10) + 1)
	amt := round2(uniformMoney(r.rng, 1, 300) * float64(qty))
	tax := round2(amt * 0.08)
	fee := uniformMoney(r.rng, 2, 8)
	shipCost := uniformMoney(r.rng, 1, 20)

	refunded := round2(amt * 0.9)
	reversed := round2(amt * 0.1)
	credit := round2(amt * 0.05)

	return []string{
		itoa(retDate),
		itoa(retTime),
		itoa(item),
		itoa(refCust),
		itoa(refCdemo),
		itoa(refHdemo),
		itoa(refAddr),
		itoa(retCust),
		itoa(retCdemo),
		itoa(retHdemo),
		itoa(retAddr),
		itoa(page),
		itoa(reason),
		itoa(order),
		itoa(qty),
		money(amt),
		money(tax),
		money(amt + tax),
		money(fee),
		money(shipCost),
		money(refunded),
		money(reversed),
		money(credit),
		money(round2(fee + shipCost)),
	}, nil
}

func (r *run) inventoryRow(sk int64) ([]string, error) {
	date, err := r.sample("date_dim")
	if err != nil {
		return nil, err
	}
	item, err := r.sample("item")
	if err != nil {
		return nil, err
	}
	warehouse, err := r.sample("warehouse")
	if err != nil {
		return nil, err
	}
	return []string{
		itoa(date),
		itoa(item),
		itoa(warehouse),
		itoaInt(r.rng.Intn(1000)),
	}, nil
}
