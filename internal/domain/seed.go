package domain

// SeedCatalog returns the built-in default catalog used to initialize a new
// identity's catalog document. Codes and credit weights follow the Open
// University CS curriculum.
func SeedCatalog() Catalog {
	return Catalog{
		{Code: "20476", Name: "Discrete Mathematics: Set Theory, Combinatorics and Graph Theory", Credits: 4, Category: CategoryRequiredMath},
		{Code: "20109", Name: "Linear Algebra 1", Credits: 7, Category: CategoryRequiredMath},
		{Code: "20229", Name: "Linear Algebra 2", Credits: 5, Category: CategoryRequiredMath},
		{Code: "20474", Name: "Infinitesimal Calculus 1", Credits: 7, Category: CategoryRequiredMath},
		{Code: "20475", Name: "Infinitesimal Calculus 2", Credits: 7, Category: CategoryRequiredMath},
		{Code: "20425", Name: "Probability and Introduction to Statistics for Computer Science", Credits: 5, Category: CategoryRequiredMath},
		{Code: "20441", Name: "Introduction to Computer Science and the Java Language", Credits: 6, Category: CategoryRequiredCS},
		{Code: "20407", Name: "Data Structures and Introduction to Algorithms", Credits: 6, Category: CategoryRequiredCS},
		{Code: "20417", Name: "Algorithms", Credits: 5, Category: CategoryRequiredCS},
		{Code: "20465", Name: "Systems Programming Laboratory", Credits: 4, Category: CategoryRequiredCS},
		{Code: "20440", Name: "Automata and Formal Languages", Credits: 4, Category: CategoryRequiredCS},
		{Code: "20585", Name: "Introduction to Computability and Complexity Theory", Credits: 5, Category: CategoryRequiredCS},
		{Code: "20604", Name: "Computational Models", Credits: 5, Category: CategoryRequiredCS},
		{Code: "20471", Name: "Computer Organization", Credits: 4, Category: CategoryRequiredCS},
		{Code: "20466", Name: "Logic for Computer Science", Credits: 4, Category: CategoryRequiredCS},
		{Code: "20594", Name: "Operating Systems", Credits: 4, Category: CategoryRequiredCS},
		{Code: "20905", Name: "Programming Languages", Credits: 4, Category: CategoryRequiredCS},
		{Code: "20277", Name: "Database Systems", Credits: 4, Category: CategoryElective},
		{Code: "20436", Name: "Principles of Information Systems Development", Credits: 4, Category: CategoryElective},
		{Code: "20296", Name: "Coding Theory", Credits: 4, Category: CategoryElective},
		{Code: "20462", Name: "Numerical Analysis 1", Credits: 4, Category: CategoryElective},
		{Code: "20606", Name: "Programming and Data Analysis in Python", Credits: 6, Category: CategoryElective},
		{Code: "20551", Name: "Introduction to Artificial Intelligence", Credits: 4, Category: CategoryElective},
		{Code: "20554", Name: "Advanced Java Programming", Credits: 4, Category: CategoryElective},
		{Code: "20948", Name: "Computer Communication Networks", Credits: 4, Category: CategoryElective},
		{Code: "20937", Name: "Defensive Systems Programming", Credits: 4, Category: CategoryElective},
		{Code: "20562", Name: "Computer Graphics", Credits: 4, Category: CategoryElective},
		{Code: "20580", Name: "Introduction to Cryptography", Credits: 4, Category: CategoryElective},
		{Code: "20364", Name: "Compilation", Credits: 4, Category: CategoryElective},
		{Code: "20906", Name: "Object-Oriented Programming", Credits: 4, Category: CategoryElective},
		{Code: "20574", Name: "Data Systems: Technologies and Algorithms", Credits: 4, Category: CategoryElective},
		{Code: "20581", Name: "Biological Computation", Credits: 4, Category: CategoryElective},
		{Code: "20595", Name: "Data Mining", Credits: 4, Category: CategoryElective},
		{Code: "20900", Name: "Numerical Analysis 2", Credits: 4, Category: CategoryElective},
		{Code: "20942", Name: "Introduction to Machine Learning", Credits: 4, Category: CategoryElective},
		{Code: "20944", Name: "Algorithmic Robotics", Credits: 4, Category: CategoryElective},
		{Code: "20940", Name: "Introduction to Cyberspace Security", Credits: 4, Category: CategoryElective},
		{Code: "20946", Name: "Introduction to Software Testing (English)", Credits: 4, Category: CategoryElective},
		{Code: "20399", Name: "Computational Geometry", Credits: 4, Category: CategoryElective},
		{Code: "20945", Name: "Window to Research in Computer Science (Honors)", Credits: 4, Category: CategoryElective},
		{Code: "20963", Name: "Guest Lectures: Special Topic in Computer Science", Credits: 4, Category: CategoryElective},
		{Code: "22913", Name: "Project in Computer Science", Credits: 6, Category: CategoryElective},
		{Code: "20368", Name: "Seminar in Software Engineering", Credits: 3, Category: CategorySeminar},
		{Code: "20369", Name: "Seminar in Numerical Analysis", Credits: 3, Category: CategorySeminar},
		{Code: "20370", Name: "Seminar in Computability", Credits: 3, Category: CategorySeminar},
		{Code: "20371", Name: "Seminar in Database Systems", Credits: 3, Category: CategorySeminar},
		{Code: "20372", Name: "Seminar in Artificial Intelligence", Credits: 3, Category: CategorySeminar},
		{Code: "20374", Name: "Seminar in Cryptography", Credits: 3, Category: CategorySeminar},
		{Code: "20375", Name: "Seminar on a Special Topic in Computer Science", Credits: 3, Category: CategorySeminar},
		{Code: "20388", Name: "Seminar in Communication and Distributed Algorithms", Credits: 3, Category: CategorySeminar},
		{Code: "20389", Name: "Seminar in Operating Systems", Credits: 3, Category: CategorySeminar},
		{Code: "20390", Name: "Seminar in Algorithms", Credits: 3, Category: CategorySeminar},
		{Code: "20552", Name: "Seminar in Bioinformatics", Credits: 3, Category: CategorySeminar},
		{Code: "20560", Name: "Seminar: From Computer Science to Its Teaching", Credits: 3, Category: CategorySeminar},
		{Code: "20583", Name: "Seminar in Parallel Systems", Credits: 3, Category: CategorySeminar},
		{Code: "20921", Name: "Honors Seminar in Computer Science and Cognition", Credits: 3, Category: CategorySeminar},
		{Code: "20373", Name: "Seminar in Information Systems", Credits: 3, Category: CategorySeminar},
		{Code: "20927", Name: "Seminar in Cyberspace Security", Credits: 3, Category: CategorySeminar},
		{Code: "20922", Name: "Seminar in Computational Intelligence", Credits: 3, Category: CategorySeminar},
		{Code: "20954", Name: "Seminar in Computer Science (English)", Credits: 3, Category: CategorySeminar},
		{Code: "20586", Name: "Workshop in Object-Oriented Programming", Credits: 3, Category: CategoryWorkshop},
		{Code: "20503", Name: "Workshop in Advanced Java Programming", Credits: 3, Category: CategoryWorkshop},
		{Code: "20563", Name: "Workshop in Database Systems", Credits: 3, Category: CategoryWorkshop},
		{Code: "20587", Name: "Workshop in Operating Systems", Credits: 3, Category: CategoryWorkshop},
		{Code: "20588", Name: "Workshop in Computer Networks", Credits: 3, Category: CategoryWorkshop},
		{Code: "20936", Name: "Workshop in Data Science", Credits: 3, Category: CategoryWorkshop},
		{Code: "20931", Name: "Workshop in Information Security", Credits: 3, Category: CategoryWorkshop},
		{Code: "20973", Name: "Workshop in Simulation of Autonomous Systems (English)", Credits: 3, Category: CategoryWorkshop},
		{Code: "20995", Name: "Workshop in Cloud and Web Application Technologies", Credits: 3, Category: CategoryWorkshop},
		{Code: "20975", Name: "Guest Lectures: Workshop on a Special Topic", Credits: 3, Category: CategoryWorkshop},
		{Code: "20964", Name: "Guest Lectures: Workshop on a Special Topic (English)", Credits: 3, Category: CategoryWorkshop},
	}
}
