package location

// PromptTemplate instructs the model to answer with a single wttr.in location token.
// The user's question is appended verbatim after the last line.
const PromptTemplate = `
## Instructions
I need to extract a location based on a question regarding the weather at that location. 
The location can be one of three options: 
1. A city 
2. An airport 
3. a generic location that is NOT a city 

### Notes
If you ever need to use a space, just use a '+' instead
If the location is an airport, return the location as the three letter IATA designation of the airport
If the location is generic and not a city, place a '~' before the answer

### Examples 
'what is the weather at the Eiffel Tower?' will lead to response '~Eiffel+Tower' (option 3)
'I would like to know how warm it is in Colorado Springs' will lead to response 'Colorado+Springs' (option 1)
'I would like to know if it is going to rain at Denver International Airport' which will lead to response 'dia' (option 2)
'What is the weather at Ball Arena?' which will lead to response '~Ball+Arena' (option 3)
'I want to know the weather at The Albuquerque International Sunport' which will lead to response 'abq' (option 2)
'How cold will it be in Seattle?' which will lead to response 'Seattle' (option 1)  

### Additional Information
You will first check to see if the location you extract is a city, if it is not, you will check to see if it is an airport. 
If that is not true, you will then extract just the generic location. 
Reminder that it can only be one of the three cases! 
A response should never end in a '+'. 
Do not say anything else, just say the response I am asking for. 

### Prompt
The prompt you will extract the location from is: 
`

// Compose appends question to PromptTemplate.
func Compose(question string) string {
	return PromptTemplate + question
}
