package advisor

// explanation is one entry in the ordered term table. Terms are matched
// by substring against the normalized message, padded with one space on
// each side so short terms can anchor to word boundaries (" ira ").
// The first entry with a matching term wins, so specific vocabulary
// ("mutual fund", "roth ira", "property tax") must be declared before
// the general words it contains ("fund", "ira", "tax").
type explanation struct {
	terms   []string
	title   string
	summary string
	details []string
	tip     string
}

// explanations is declaration-ordered. Order is part of the contract:
// ties between overlapping terms resolve to the earlier entry.
var explanations = []explanation{
	// Investment vocabulary
	{
		terms:   []string{"mutual fund"},
		title:   "Mutual funds",
		summary: "A mutual fund pools money from many investors to buy a professionally managed mix of stocks, bonds, or other assets.",
		details: []string{
			"You buy shares of the fund, not the underlying assets",
			"Actively managed funds charge higher fees (expense ratios) than index funds",
			"Good for diversification without picking individual stocks",
		},
		tip: "Compare expense ratios before buying: a 1% annual fee compounds into a large drag over decades.",
	},
	{
		terms:   []string{"index fund"},
		title:   "Index funds",
		summary: "An index fund passively tracks a market index, like the S&P 500, at very low cost.",
		details: []string{
			"No fund manager picking stocks, so fees are minimal",
			"Historically outperforms most actively managed funds after fees",
			"A common core holding for long-term investors",
		},
		tip: "Dollar-cost averaging into a broad index fund is the simplest long-term strategy.",
	},
	{
		terms:   []string{" etf", "exchange-traded fund", "exchange traded fund"},
		title:   "ETFs",
		summary: "An ETF is a basket of securities that trades on an exchange like a single stock.",
		details: []string{
			"Trades all day at market price, unlike mutual funds priced once daily",
			"Usually low fees and no minimum investment beyond one share",
			"Available for indexes, sectors, bonds, and commodities",
		},
	},
	{
		terms:   []string{"dividend"},
		title:   "Dividends",
		summary: "A dividend is a share of company profits paid out to stockholders, usually quarterly.",
		details: []string{
			"Reinvesting dividends compounds your returns",
			"Dividend income may be taxed at a lower qualified rate",
			"High yield can signal risk, not just generosity",
		},
	},
	{
		terms:   []string{"compound interest", "compounding"},
		title:   "Compound interest",
		summary: "Compound interest means you earn interest on both your original money and the interest it already earned.",
		details: []string{
			"Growth accelerates the longer money stays invested",
			"Starting ten years earlier can matter more than saving twice as much later",
			"Works against you on debt: unpaid interest also compounds",
		},
		tip: "The rule of 72: divide 72 by your annual return to estimate years to double your money.",
	},
	{
		terms:   []string{"capital gains tax"},
		title:   "Capital gains tax",
		summary: "Capital gains tax is owed on profit when you sell an investment for more than you paid.",
		details: []string{
			"Assets held over a year qualify for lower long-term rates",
			"Losses can offset gains to reduce the bill",
			"Tax-advantaged accounts defer or avoid it entirely",
		},
	},
	{
		terms:   []string{"capital gain"},
		title:   "Capital gains",
		summary: "A capital gain is the profit from selling an asset above its purchase price.",
		details: []string{
			"Unrealized gains exist only on paper until you sell",
			"Holding period decides short-term vs long-term tax treatment",
		},
	},
	{
		terms:   []string{"diversif"},
		title:   "Diversification",
		summary: "Diversification spreads your money across different assets so one bad bet cannot sink you.",
		details: []string{
			"Mix asset classes: stocks, bonds, cash, real estate",
			"Spread within a class too: sectors, regions, company sizes",
			"Broad funds give instant diversification in one purchase",
		},
	},
	{
		terms:   []string{"portfolio"},
		title:   "Portfolios",
		summary: "Your portfolio is the full collection of your investments, and its mix should match your goals and time horizon.",
		details: []string{
			"A common rule of thumb: more stocks when young, more bonds near retirement",
			"Rebalance periodically to keep your target mix",
		},
	},
	{
		terms:   []string{"bull market"},
		title:   "Bull markets",
		summary: "A bull market is a sustained period of rising prices, usually 20%+ off a low.",
		details: []string{
			"Optimism can stretch valuations; avoid chasing hot assets",
			"Staying invested through cycles beats timing them",
		},
	},
	{
		terms:   []string{"bear market"},
		title:   "Bear markets",
		summary: "A bear market is a drop of 20% or more from recent highs, usually amid pessimism.",
		details: []string{
			"Selling in a panic locks in losses",
			"Downturns historically recover, though timing varies",
			"Continuing regular contributions buys at lower prices",
		},
	},
	{
		terms:   []string{" bond"},
		title:   "Bonds",
		summary: "A bond is a loan you make to a government or company in exchange for regular interest and your money back at maturity.",
		details: []string{
			"Generally steadier than stocks but with lower expected returns",
			"Prices fall when interest rates rise",
			"Credit rating reflects the chance the borrower defaults",
		},
	},
	{
		terms:   []string{"stock", "equities", "shares"},
		title:   "Stocks",
		summary: "A stock is a slice of ownership in a company; its value moves with the company's fortunes and market sentiment.",
		details: []string{
			"Highest long-run growth of the major asset classes, with the biggest swings",
			"Own many via funds instead of betting on a few names",
			"Time in the market beats timing the market",
		},
	},
	{
		terms:   []string{" reit", "real estate investment trust"},
		title:   "REITs",
		summary: "A REIT lets you invest in income-producing real estate without buying property yourself.",
		details: []string{
			"Required to pay out most taxable income as dividends",
			"Trades like a stock, so it is far more liquid than property",
		},
	},
	{
		terms:   []string{"crypto", "bitcoin", "ethereum"},
		title:   "Cryptocurrency",
		summary: "Cryptocurrency is a highly volatile digital asset; treat it as speculation, not a savings plan.",
		details: []string{
			"Swings of 50%+ in a year are routine",
			"No deposit insurance and limited recourse if an exchange fails",
			"If you buy at all, keep it a small slice you can afford to lose",
		},
	},
	{
		terms:   []string{" ipo ", " ipos ", "initial public offering"},
		title:   "IPOs",
		summary: "An IPO is a company's first sale of stock to the public; early trading is often volatile.",
		details: []string{
			"Hype frequently outruns fundamentals in the first months",
			"Waiting for a few earnings reports reduces guesswork",
		},
	},
	{
		terms:   []string{"broker"},
		title:   "Brokerage accounts",
		summary: "A broker is the licensed middleman that executes your investment trades; a brokerage account is where those investments live.",
		details: []string{
			"Most large brokers now charge zero commission on stock trades",
			"Check for account fees, fund fees, and cash sweep rates instead",
		},
	},

	// Retirement vocabulary
	{
		terms:   []string{"roth ira", "roth"},
		title:   "Roth IRA",
		summary: "A Roth IRA is funded with after-tax money; qualified withdrawals in retirement are completely tax-free.",
		details: []string{
			"Best when you expect a higher tax bracket later",
			"Contributions (not earnings) can be withdrawn any time without penalty",
			"Annual contribution limits apply and phase out at high incomes",
		},
	},
	{
		terms:   []string{"401k", "401(k)", "401 k"},
		title:   "401(k) plans",
		summary: "A 401(k) is an employer retirement plan that invests pre-tax payroll deductions, often with an employer match.",
		details: []string{
			"Always capture the full employer match first: it is an immediate 100% return",
			"Contributions lower your taxable income today",
			"Early withdrawals usually cost a 10% penalty plus taxes",
		},
		tip: "Increase your contribution one percentage point every raise; you will not miss it.",
	},
	{
		terms:   []string{" ira ", " iras ", "individual retirement"},
		title:   "IRAs",
		summary: "An IRA is a personal retirement account with tax advantages, independent of any employer.",
		details: []string{
			"Traditional IRAs deduct now and tax withdrawals later",
			"Roth IRAs tax now and withdraw tax-free later",
		},
	},
	{
		terms:   []string{"pension"},
		title:   "Pensions",
		summary: "A pension pays a guaranteed income in retirement based on your salary and years of service.",
		details: []string{
			"Increasingly rare outside the public sector",
			"Lump-sum buyout offers deserve careful comparison against the lifetime income",
		},
	},
	{
		terms:   []string{"social security"},
		title:   "Social Security",
		summary: "Social Security is a government retirement benefit funded by payroll taxes; the age you claim changes the monthly amount for life.",
		details: []string{
			"Claiming early shrinks checks permanently; delaying grows them until 70",
			"It was designed to supplement savings, not replace them",
		},
	},
	{
		terms:   []string{"annuit"},
		title:   "Annuities",
		summary: "An annuity is an insurance contract that converts a lump sum into a stream of income.",
		details: []string{
			"Fees and surrender charges vary enormously; read the contract",
			"Simple immediate annuities are easier to evaluate than variable ones",
		},
	},
	{
		terms:   []string{"retire"},
		title:   "Retirement planning",
		summary: "Retirement planning means saving enough invested money that work becomes optional.",
		details: []string{
			"A common target is saving 15% of income across all retirement accounts",
			"The 4% guideline: a portfolio of 25x annual spending can sustain retirement",
			"Tax-advantaged accounts first, taxable brokerage after",
		},
	},

	// Banking and credit vocabulary
	{
		terms:   []string{"credit score", "credit rating", "fico"},
		title:   "Credit scores",
		summary: "Your credit score (300-850) tells lenders how reliably you repay; payment history and utilization drive most of it.",
		details: []string{
			"Pay every bill on time: history is about 35% of the score",
			"Keep card balances under 30% of their limits",
			"Old accounts help; avoid closing your oldest card",
		},
		tip: "Check your report annually for errors; disputes are free.",
	},
	{
		terms:   []string{"credit card"},
		title:   "Credit cards",
		summary: "A credit card is a revolving loan; paid in full monthly it is a convenience, carried as a balance it is expensive debt.",
		details: []string{
			"Typical interest rates run 20%+ annually",
			"Paying only the minimum can stretch a balance across decades",
			"Rewards never outweigh interest on a carried balance",
		},
	},
	{
		terms:   []string{"credit limit", "utilization"},
		title:   "Credit limits",
		summary: "Your credit limit is the maximum you can borrow on a card; using a small fraction of it helps your score.",
		details: []string{
			"Utilization above 30% starts to hurt your credit score",
			"A higher limit you do not spend against lowers utilization",
		},
	},
	{
		terms:   []string{"checking account", "checking"},
		title:   "Checking accounts",
		summary: "A checking account is for everyday money in and out; it earns little or nothing, so keep only working cash there.",
		details: []string{
			"Watch for monthly maintenance fees and minimum balance rules",
			"Overdraft 'protection' often costs more than it protects",
		},
	},
	{
		terms:   []string{"savings account", "high-yield savings", "high yield savings"},
		title:   "Savings accounts",
		summary: "A savings account holds cash you do not need daily; high-yield online accounts pay meaningfully more than branch banks.",
		details: []string{
			"Deposit insurance covers balances up to the government limit",
			"Ideal home for your emergency fund",
		},
	},
	{
		terms:   []string{"certificate of deposit", "cd rate", " cds ", " cd "},
		title:   "Certificates of deposit",
		summary: "A CD locks your cash for a fixed term in exchange for a guaranteed rate.",
		details: []string{
			"Early withdrawal usually forfeits some interest",
			"A ladder of staggered maturities balances rate and access",
		},
	},
	{
		terms:   []string{"money market"},
		title:   "Money market accounts",
		summary: "A money market account blends savings-level interest with limited check or card access.",
		details: []string{
			"Rates float with the market, unlike a CD",
			"Often requires a higher minimum balance",
		},
	},
	{
		terms:   []string{"overdraft"},
		title:   "Overdrafts",
		summary: "An overdraft happens when you spend more than your account holds; the per-incident fees add up fast.",
		details: []string{
			"You can usually opt out so purchases simply decline",
			"Linking a savings account for transfers is cheaper than fees",
		},
	},
	{
		terms:   []string{" apr ", "annual percentage rate"},
		title:   "APR",
		summary: "APR is the true yearly cost of borrowing, interest plus mandatory fees, which makes it the number to compare between loans.",
		details: []string{
			"A low teaser rate can hide a high ongoing APR",
			"For credit cards, APR only matters if you carry a balance",
		},
	},
	{
		terms:   []string{"interest rate"},
		title:   "Interest rates",
		summary: "An interest rate is the price of money: what savings earn and what borrowing costs.",
		details: []string{
			"Central bank moves ripple into mortgage, card, and savings rates",
			"When rates rise, new savers win and new borrowers pay more",
		},
	},
	{
		terms:   []string{"direct deposit"},
		title:   "Direct deposit",
		summary: "Direct deposit sends your paycheck straight to your account, which makes automatic saving trivial.",
		details: []string{
			"Many employers can split one paycheck across multiple accounts",
			"Routing a fixed slice to savings automates the habit",
		},
	},
	{
		terms:   []string{"wire transfer"},
		title:   "Wire transfers",
		summary: "A wire moves money between banks the same day, for a fee; once sent it is effectively irreversible.",
		details: []string{
			"Verify recipient details by a second channel before large wires",
			"Domestic ACH transfers are slower but usually free",
		},
	},

	// Real estate vocabulary
	{
		terms:   []string{"down payment"},
		title:   "Down payments",
		summary: "The down payment is the cash you put toward a home; 20% avoids mortgage insurance but is not a hard requirement.",
		details: []string{
			"Below 20% usually adds a monthly PMI charge",
			"Keep your emergency fund intact after closing",
		},
	},
	{
		terms:   []string{"refinanc"},
		title:   "Refinancing",
		summary: "Refinancing replaces your mortgage with a new one, worthwhile when rate savings outrun closing costs.",
		details: []string{
			"Compute the break-even month: costs divided by monthly savings",
			"Restarting a 30-year clock can cost more than the rate saves",
		},
	},
	{
		terms:   []string{"escrow"},
		title:   "Escrow",
		summary: "Escrow is a neutral account that holds money mid-transaction, and later collects your property tax and insurance with each mortgage payment.",
		details: []string{
			"Escrow shortages show up as payment increases at annual review",
		},
	},
	{
		terms:   []string{"closing cost"},
		title:   "Closing costs",
		summary: "Closing costs are the 2-5% of a home's price paid in fees at purchase, on top of the down payment.",
		details: []string{
			"Lender fees are negotiable and shoppable",
			"Rolling costs into the loan means paying interest on them for decades",
		},
	},
	{
		terms:   []string{"property tax"},
		title:   "Property taxes",
		summary: "Property tax is an ongoing levy on your home's assessed value, and it can rise even with a fixed mortgage.",
		details: []string{
			"Assessments can be appealed if comparable homes are valued lower",
		},
	},
	{
		terms:   []string{"home equity", "equity"},
		title:   "Home equity",
		summary: "Equity is the slice of your home you actually own: market value minus the loan balance.",
		details: []string{
			"Grows by paying principal and by appreciation",
			"Borrowing against it puts the house on the line",
		},
	},
	{
		terms:   []string{"mortgage"},
		title:   "Mortgages",
		summary: "A mortgage is a long-term loan secured by the home itself; the rate and term decide how much house the same payment buys.",
		details: []string{
			"A 15-year term costs less in total but more per month than a 30-year",
			"Extra principal payments early save the most interest",
			"Keep the payment under about 28% of gross income",
		},
	},
	{
		terms:   []string{"renting", " rent ", "rent vs", "rent or buy"},
		title:   "Renting vs buying",
		summary: "Renting is not throwing money away; it buys flexibility and someone else carries repairs, taxes, and price risk.",
		details: []string{
			"Buying tends to win only past a multi-year horizon",
			"Compare total ownership cost, not rent vs mortgage payment alone",
		},
	},

	// Tax vocabulary (specific entries first, bare "tax" last)
	{
		terms:   []string{"tax deduction", "tax-deductible", "tax deductible", "write-off", "write off"},
		title:   "Tax deductions",
		summary: "A deduction lowers the income you are taxed on, so its value equals the amount times your tax bracket.",
		details: []string{
			"Only worth itemizing when deductions beat the standard deduction",
			"Retirement contributions are deductions most people can take",
		},
	},
	{
		terms:   []string{"tax credit"},
		title:   "Tax credits",
		summary: "A credit cuts your tax bill dollar for dollar, which makes it stronger than a deduction of the same size.",
		details: []string{
			"Refundable credits can pay out even with zero tax owed",
			"Education, child, and energy credits are the common ones",
		},
	},
	{
		terms:   []string{"tax refund", "refund"},
		title:   "Tax refunds",
		summary: "A refund is the government returning money you over-withheld all year, an interest-free loan in the wrong direction.",
		details: []string{
			"Adjusting withholding puts that money in each paycheck instead",
			"If you get a refund, route it to savings before lifestyle absorbs it",
		},
	},
	{
		terms:   []string{"withholding"},
		title:   "Tax withholding",
		summary: "Withholding is tax taken from each paycheck in advance; tuning it controls refund vs bill at filing time.",
		details: []string{
			"Revisit after marriage, a new job, or a side income",
			"Underwithholding can trigger penalties, not just a bill",
		},
	},
	{
		terms:   []string{"income tax", "tax bracket"},
		title:   "Income tax",
		summary: "Income tax is progressive: each bracket's rate applies only to the income inside that bracket, not to everything you earn.",
		details: []string{
			"A raise into a higher bracket never lowers take-home pay",
			"Your effective rate is always below your top bracket rate",
		},
	},
	{
		terms:   []string{"tax"},
		title:   "Taxes",
		summary: "Taxes touch every financial decision; the legal goal is simple: never pay more than the rules require.",
		details: []string{
			"Tax-advantaged accounts are the biggest lever for most people",
			"Keep records; deductions you cannot document do not exist",
		},
	},

	// Insurance vocabulary
	{
		terms:   []string{"life insurance"},
		title:   "Life insurance",
		summary: "Life insurance replaces your income for people who depend on it; term coverage does that cheaply.",
		details: []string{
			"Term policies cover a set period for a low premium",
			"Whole/universal policies bundle investing with insurance at much higher cost",
			"A common sizing rule: 10-12x annual income while dependents rely on you",
		},
	},
	{
		terms:   []string{"health insurance"},
		title:   "Health insurance",
		summary: "Health insurance caps your exposure to medical bills; the premium is only part of the cost.",
		details: []string{
			"Compare deductible + out-of-pocket maximum, not just the premium",
			"High-deductible plans can pair with a tax-advantaged HSA",
		},
	},
	{
		terms:   []string{"deductible"},
		title:   "Deductibles",
		summary: "A deductible is what you pay out of pocket before insurance starts covering claims.",
		details: []string{
			"Higher deductible, lower premium, and vice versa",
			"Pick the highest deductible your emergency fund could absorb",
		},
	},
	{
		terms:   []string{"premium"},
		title:   "Insurance premiums",
		summary: "A premium is the recurring price of keeping an insurance policy active.",
		details: []string{
			"Shopping carriers every year or two routinely saves money",
			"Bundling home and auto usually earns a discount",
		},
	},
	{
		terms:   []string{"copay", "co-pay"},
		title:   "Copays",
		summary: "A copay is the fixed amount you pay at each visit or prescription, regardless of the total bill.",
		details: []string{
			"Copays usually do not count toward the deductible",
			"Check the out-of-pocket maximum for worst-case planning",
		},
	},
	{
		terms:   []string{"insurance"},
		title:   "Insurance",
		summary: "Insurance trades a small certain cost for protection against a large uncertain one; insure catastrophes, not inconveniences.",
		details: []string{
			"Cover what you could not afford to replace: income, health, home, liability",
			"Skip gadget warranties; your emergency fund handles small losses",
		},
	},

	// Savings and budgeting vocabulary
	{
		terms:   []string{"emergency fund", "rainy day"},
		title:   "Emergency funds",
		summary: "An emergency fund is 3-6 months of essential expenses in cash, the foundation everything else stands on.",
		details: []string{
			"Keep it in a high-yield savings account, not invested",
			"It turns a job loss or car repair into an inconvenience instead of debt",
		},
		tip: "Start with one month of expenses; momentum matters more than the target.",
	},
	{
		terms:   []string{"50/30/20", "50-30-20", "50 30 20"},
		title:   "The 50/30/20 rule",
		summary: "50/30/20 splits take-home pay into 50% needs, 30% wants, and 20% saving or debt payoff.",
		details: []string{
			"A starting template, not a law; high-cost cities may need 60/20/20",
			"The non-negotiable part is paying the savings slice first",
		},
	},
	{
		terms:   []string{"budget"},
		title:   "Budgeting",
		summary: "A budget is just a plan for your money made before the month starts, instead of an autopsy after it ends.",
		details: []string{
			"Track a full month of real spending before setting limits",
			"Automate savings on payday so the plan enforces itself",
			"Review monthly; a budget you never revisit stops being true",
		},
	},

	// Debt vocabulary
	{
		terms:   []string{"student loan"},
		title:   "Student loans",
		summary: "Student loans come in federal and private flavors; federal ones carry income-driven repayment and forgiveness options private loans lack.",
		details: []string{
			"Exhaust federal options before refinancing into private debt",
			"Income-driven plans cap payments at a share of discretionary income",
		},
	},
	{
		terms:   []string{"consolidat"},
		title:   "Debt consolidation",
		summary: "Consolidation rolls several debts into one loan, which only helps if the new rate is lower and the freed-up cards stay unused.",
		details: []string{
			"The risk is running balances back up on the cleared cards",
			"Compare the consolidation APR against your weighted current rate",
		},
	},
	{
		terms:   []string{"bankrupt"},
		title:   "Bankruptcy",
		summary: "Bankruptcy is a legal reset for unpayable debt, with a multi-year credit impact; it is a last resort, not a failure.",
		details: []string{
			"Credit rebuilds in years, not forever",
			"Nonprofit credit counseling is worth trying first",
		},
	},
	{
		terms:   []string{"collateral"},
		title:   "Collateral",
		summary: "Collateral is property pledged against a loan; secured debt is cheaper precisely because the lender can take it.",
		details: []string{
			"Car loans and mortgages are secured; most cards are not",
			"Never secure small consumer debt against your home",
		},
	},
	{
		terms:   []string{"principal"},
		title:   "Loan principal",
		summary: "Principal is the amount actually borrowed; interest accrues on whatever principal remains.",
		details: []string{
			"Extra payments marked 'principal only' shorten the loan",
			"Early in a mortgage, most of each payment is interest",
		},
	},
	{
		terms:   []string{"debt", "loan"},
		title:   "Managing debt",
		summary: "Not all debt is equal: rank it by interest rate, attack the expensive kind, and never borrow for things that lose value fast.",
		details: []string{
			"Avalanche method: pay highest rate first, mathematically optimal",
			"Snowball method: pay smallest balance first, psychologically easier",
			"Anything above ~8% deserves payoff before taxable investing",
		},
	},
	{
		terms:   []string{"interest"},
		title:   "Interest",
		summary: "Interest is rent on money: you collect it as a saver and pay it as a borrower, and the rate gap between the two funds the bank.",
		details: []string{
			"Compare rates as APR/APY so fees and compounding are included",
		},
	},

	// Planning vocabulary
	{
		terms:   []string{"net worth"},
		title:   "Net worth",
		summary: "Net worth is everything you own minus everything you owe, the single best scoreboard for financial progress.",
		details: []string{
			"Track it quarterly; the trend matters more than the number",
			"It can be negative early on; direction is what counts",
		},
	},
	{
		terms:   []string{"estate plan", "estate planning"},
		title:   "Estate planning",
		summary: "Estate planning decides who gets what and who decides for you; beneficiary forms override wills, so keep both current.",
		details: []string{
			"A will, beneficiaries, and powers of attorney cover most situations",
			"Review after marriage, divorce, births, or big account changes",
		},
	},
	{
		terms:   []string{"a will ", "my will ", "living will"},
		title:   "Wills",
		summary: "A will names guardians for children and directs property that lacks a beneficiary; without one the state decides.",
		details: []string{
			"Accounts with named beneficiaries bypass the will entirely",
		},
	},
	{
		terms:   []string{"inflation"},
		title:   "Inflation",
		summary: "Inflation quietly shrinks what cash buys, which is why long-term money must grow faster than prices rise.",
		details: []string{
			"At 3% inflation, prices double roughly every 24 years",
			"Cash under the mattress is a guaranteed slow loss",
		},
	},
	{
		terms:   []string{"financial plan", "financial planning"},
		title:   "Financial planning",
		summary: "A financial plan orders the moves: emergency fund, employer match, expensive debt, then investing toward named goals.",
		details: []string{
			"Write goals with amounts and dates; vague goals do not get funded",
			"Revisit the plan yearly and after major life changes",
		},
	},
	{
		terms:   []string{"saving"},
		title:   "Saving",
		summary: "Saving works when it is automatic and invisible: pay your future self first, then live on the rest.",
		details: []string{
			"Even 1% of income automated beats 10% intended",
			"Separate accounts per goal make progress visible",
		},
	},
	{
		terms:   []string{"invest"},
		title:   "Investing",
		summary: "Investing is putting money into assets expected to grow; the reliable version is boring: broad funds, regular contributions, decades of patience.",
		details: []string{
			"Start after the emergency fund and employer match are handled",
			"Low fees and diversification beat stock picking for most people",
			"Volatility is the admission price for long-term growth",
		},
		tip: "Automate a fixed monthly contribution and stop watching daily prices.",
	},
}
