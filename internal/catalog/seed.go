package catalog

import "fmt"

// Seed returns the built-in dataset: 5 universities with 5 courses each
// (2 Bachelor's + 2 Master's + 1 PhD per university). University and course
// identifiers are assigned in traversal order, so the first university's
// first course is always C001.
func Seed() *Catalog {
	c := &Catalog{
		Universities: []University{
			{
				Name:    "University of Texas at Austin",
				Country: "United States",
				City:    "Austin",
				Website: "https://www.utexas.edu",
				Courses: []CourseSeed{
					{Name: "BS Computer Science", Level: LevelBachelors, Discipline: "Computer Science", URL: "https://catalog.utexas.edu/undergraduate/natural-sciences/degrees-and-programs/bs-computer-science/"},
					{Name: "BS Mathematics", Level: LevelBachelors, Discipline: "Mathematics", URL: "https://catalog.utexas.edu/undergraduate/natural-sciences/degrees-and-programs/bs-mathematics/"},
					{Name: "MS Computer Science", Level: LevelMasters, Discipline: "Computer Science", URL: "https://www.cs.utexas.edu/graduate/prospective-students/masters-program"},
					{Name: "MS Data Science", Level: LevelMasters, Discipline: "Data Science", URL: "https://ms-datascience.utexas.edu/"},
					{Name: "PhD Electrical Engineering", Level: LevelPhD, Discipline: "Electrical Engineering", URL: "https://www.ece.utexas.edu/academics/graduate/phd"},
				},
			},
			{
				Name:    "University of Toronto",
				Country: "Canada",
				City:    "Toronto",
				Website: "https://www.utoronto.ca",
				Courses: []CourseSeed{
					{Name: "BSc Computer Science", Level: LevelBachelors, Discipline: "Computer Science", URL: "https://future.utoronto.ca/undergraduate-programs/computer-science/"},
					{Name: "BSc Life Sciences", Level: LevelBachelors, Discipline: "Life Sciences", URL: "https://future.utoronto.ca/undergraduate-programs/life-sciences/"},
					{Name: "MSc Artificial Intelligence", Level: LevelMasters, Discipline: "Artificial Intelligence", URL: "https://web.cs.toronto.edu/graduate/artificial-intelligence"},
					{Name: "MSc Statistics", Level: LevelMasters, Discipline: "Statistics", URL: "https://www.statistics.utoronto.ca/graduate"},
					{Name: "PhD Immunology", Level: LevelPhD, Discipline: "Immunology", URL: "https://immunology.utoronto.ca/graduate-studies/phd-program"},
				},
			},
			{
				Name:    "University of California, Berkeley",
				Country: "United States",
				City:    "Berkeley",
				Website: "https://www.berkeley.edu",
				Courses: []CourseSeed{
					{Name: "BS Electrical Engineering & CS", Level: LevelBachelors, Discipline: "Electrical Engineering", URL: "https://eecs.berkeley.edu/academics/undergraduate/eecs-bs/"},
					{Name: "BS Data Science", Level: LevelBachelors, Discipline: "Data Science", URL: "https://data.berkeley.edu/degrees/data-science-ba"},
					{Name: "MS Information & Data Science", Level: LevelMasters, Discipline: "Data Science", URL: "https://ischool.berkeley.edu/programs/mids"},
					{Name: "MS Civil & Environmental Eng.", Level: LevelMasters, Discipline: "Civil Engineering", URL: "https://ce.berkeley.edu/programs/grad"},
					{Name: "PhD Neuroscience", Level: LevelPhD, Discipline: "Neuroscience", URL: "https://neuroscience.berkeley.edu/phd-program/"},
				},
			},
			{
				Name:    "University of Michigan",
				Country: "United States",
				City:    "Ann Arbor",
				Website: "https://umich.edu",
				Courses: []CourseSeed{
					{Name: "BS Computer Science", Level: LevelBachelors, Discipline: "Computer Science", URL: "https://lsa.umich.edu/lsa/academics/majors-minors/computer-science.html"},
					{Name: "BS Mechanical Engineering", Level: LevelBachelors, Discipline: "Mechanical Engineering", URL: "https://me.engin.umich.edu/academics/undergraduate/"},
					{Name: "MS Robotics", Level: LevelMasters, Discipline: "Robotics", URL: "https://robotics.umich.edu/academics/courses/graduate-courses/"},
					{Name: "MS Applied Statistics", Level: LevelMasters, Discipline: "Statistics", URL: "https://lsa.umich.edu/stats/graduate-students/graduate-programs/mas.html"},
					{Name: "PhD Biomedical Engineering", Level: LevelPhD, Discipline: "Biomedical Engineering", URL: "https://bme.umich.edu/academics/graduate/phd/"},
				},
			},
			{
				Name:    "University of Edinburgh",
				Country: "United Kingdom",
				City:    "Edinburgh",
				Website: "https://www.ed.ac.uk",
				Courses: []CourseSeed{
					{Name: "BSc Computer Science", Level: LevelBachelors, Discipline: "Computer Science", URL: "https://www.ed.ac.uk/studying/undergraduate/degrees/index.php?action=view&code=G400"},
					{Name: "BSc Mathematics", Level: LevelBachelors, Discipline: "Mathematics", URL: "https://www.ed.ac.uk/studying/undergraduate/degrees/index.php?action=view&code=G100"},
					{Name: "MSc Artificial Intelligence", Level: LevelMasters, Discipline: "Artificial Intelligence", URL: "https://www.ed.ac.uk/studying/postgraduate/degrees/index.php?r=site/view&id=107"},
					{Name: "MSc Data Science", Level: LevelMasters, Discipline: "Data Science", URL: "https://www.ed.ac.uk/studying/postgraduate/degrees/index.php?r=site/view&id=902"},
					{Name: "PhD Informatics", Level: LevelPhD, Discipline: "Informatics", URL: "https://www.ed.ac.uk/informatics/postgraduate/phd"},
				},
			},
		},
	}

	for i := range c.Universities {
		c.Universities[i].ID = UniversityID(i + 1)
	}
	return c
}

// UniversityID formats the n-th (1-based) university identifier.
func UniversityID(n int) string {
	return fmt.Sprintf("U%03d", n)
}

// CourseID formats the n-th (1-based) course identifier.
func CourseID(n int) string {
	return fmt.Sprintf("C%03d", n)
}
