package composer

import "fmt"

// Greeting is the synthetic assistant message every new transcript starts with.
func Greeting(name string) string {
	return fmt.Sprintf("Hello! I am a chatbot assistant of %[1]s. I was created by %[1]s to help you "+
		"learn more about their professional background. How can I assist you today? You can ask me "+
		"about their skills, projects, education, or how to get in touch!", name)
}
