package domain

// DateLayout is the calendar-date format used for batch dates and duty rate effective dates.
const DateLayout = "2006-01-02"
