package calendar

// ResolveTitle picks the display title of a course: english, then azerbaijani, then russian.
func ResolveTitle(course *Course) string {
	if course == nil {
		return UnknownCourseTitle
	}
	switch {
	case course.TitleEn != "":
		return course.TitleEn
	case course.TitleAz != "":
		return course.TitleAz
	default:
		return course.TitleRu
	}
}

type titleIndex map[string]string

func courseTitles(courses []Course) titleIndex {
	idx := make(titleIndex, len(courses))
	for i := range courses {
		idx[courses[i].ID] = ResolveTitle(&courses[i])
	}
	return idx
}

func (idx titleIndex) title(courseID string) string {
	if title, ok := idx[courseID]; ok {
		return title
	}
	return ResolveTitle(nil)
}
