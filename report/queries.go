package report

// Query is a named, fixed analysis query. The 1-based position in Canonical
// determines the exported file name (query1_..., query2_..., query3_...).
type Query struct {
	Name string
	SQL  string
}

// Canonical is the fixed, ordered report set run every cycle:
//  1. Monthly-billed positions with "data" in the title, with their minimum
//     remuneration.
//  2. Average minimum and maximum monthly remuneration by eligibility
//     category, for US citizens and student/internship eligibles. The monthly
//     rate filter applies to both eligibility branches.
//  3. Open position counts by organisation.
var Canonical = []Query{
	{
		Name: "monthly_data_titles",
		SQL: `SELECT DISTINCT TITLE_ID, TITLE, REMUNERATION_MIN
FROM POSITION
WHERE REMUNERATION_RATE = 'Monthly'
AND LOWER(TITLE) LIKE '%data%'
ORDER BY TITLE DESC`,
	},
	{
		Name: "monthly_salary_by_eligibility",
		SQL: `SELECT WHO_MAY_APPLY, AVG(REMUNERATION_MIN), AVG(REMUNERATION_MAX)
FROM POSITION
WHERE (WHO_MAY_APPLY LIKE '%United States Citizens%'
    OR WHO_MAY_APPLY LIKE '%Student/Internship Program Eligibles%')
AND REMUNERATION_RATE = 'Monthly'
GROUP BY WHO_MAY_APPLY
ORDER BY AVG(REMUNERATION_MIN) DESC`,
	},
	{
		Name: "open_positions_by_organisation",
		SQL: `SELECT ORGANISATION_NAME, COUNT(TITLE_ID)
FROM POSITION
WHERE APPLICATION_CLOSE_DATE > DATE('now')
GROUP BY ORGANISATION_NAME
ORDER BY COUNT(TITLE_ID) DESC`,
	},
}
