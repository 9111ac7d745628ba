package database

// Tables lists every table the schema creates, parents before children.
var Tables = []string{"users", "courses", "modules", "lessons", "assignments", "quizzes", "audit_events"}

// schema holds the full DDL of the catalog store. Enum columns carry CHECK
// constraints so a row with an unknown role, status or type is rejected by
// SQLite itself.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('student', 'teacher', 'admin')),
		registered_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		start_date DATE,
		end_date DATE,
		status TEXT NOT NULL CHECK (status IN ('active', 'finished')),
		teacher_id INTEGER,
		FOREIGN KEY (teacher_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS modules (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		order_index INTEGER NOT NULL,
		course_id INTEGER,
		FOREIGN KEY (course_id) REFERENCES courses(id)
	)`,
	`CREATE TABLE IF NOT EXISTS lessons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		module_id INTEGER,
		type TEXT NOT NULL CHECK (type IN ('video', 'text', 'quiz')),
		FOREIGN KEY (module_id) REFERENCES modules(id)
	)`,
	`CREATE TABLE IF NOT EXISTS assignments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		due_date DATE,
		lesson_id INTEGER,
		status TEXT NOT NULL CHECK (status IN ('done', 'not done')),
		FOREIGN KEY (lesson_id) REFERENCES lessons(id)
	)`,
	`CREATE TABLE IF NOT EXISTS quizzes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		lesson_id INTEGER,
		question_count INTEGER,
		FOREIGN KEY (lesson_id) REFERENCES lessons(id)
	)`,
	`CREATE TABLE IF NOT EXISTS audit_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		event_type TEXT NOT NULL CHECK (event_type IN ('register', 'login', 'logout', 'seed')),
		description TEXT,
		ip_address TEXT,
		user_agent TEXT,
		status TEXT NOT NULL CHECK (status IN ('success', 'failed')),
		error_msg TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE INDEX IF NOT EXISTS courses_title_idx ON courses(title)`,
	`CREATE INDEX IF NOT EXISTS modules_course_id_idx ON modules(course_id)`,
	`CREATE INDEX IF NOT EXISTS lessons_module_id_idx ON lessons(module_id)`,
	`CREATE INDEX IF NOT EXISTS assignments_lesson_id_idx ON assignments(lesson_id)`,
	`CREATE INDEX IF NOT EXISTS quizzes_lesson_id_idx ON quizzes(lesson_id)`,
	`CREATE INDEX IF NOT EXISTS audit_events_created_at_idx ON audit_events(created_at)`,
}
