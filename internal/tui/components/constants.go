package components

const (
	ColumnWidth          = 40
	TicketCardHeight     = 5  // border(2) + title + metadata + epic line
	ticketTitleMaxLength = 24 // Maximum display length for ticket title before truncation
	columnBorderOverhead = 3  // top border + bottom padding + bottom border
	headerLines          = 1  // column name and count
	topIndicatorLines    = 1  // empty line or "▲ more above"
)
