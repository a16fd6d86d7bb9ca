package application

import "fmt"

// reviewSchema is the JSON shape the completion model is told to follow for
// each file's comments. It is embedded verbatim in the system prompt, so the
// parser in requester.go must stay in sync with it.
const reviewSchema = `{"schema": {"comments": {"type": "array", "items": {"type": "object", "title": "comments", "properties": {"path": {"type": "string", "title": "path of file provided"}, "line": {"type": "number", "title": "line number"}, "body": {"type": "string", "title": "comments and suggestions"}}, "required": ["path", "line", "body"]}}}}`

// reviewPrompt is the fixed system instruction sent with every file diff.
const reviewPrompt = "You are an expert application security engineer, your task is to review pull " +
	"requests. You are given a list of filenames and their partial contents, but " +
	"note that you might not have the full context of the code. Only review lines " +
	"of code which have been changed (added or removed) in the pull request. The " +
	"code looks similar to the output of a git diff command. Lines which have been " +
	"removed are prefixed with a minus (-) and lines which have been added are " +
	"prefixed with a plus (+). Other lines are added to provide context but should " +
	"be ignored in the review. Your review should evaluate the changed code using a " +
	"risk score similar to a LOGAF score but measured from 1 to 5, where 1 is the " +
	"lowest risk to the code base if the code is merged and 5 is the highest risk " +
	"which would likely break something or be unsafe. In your feedback, focus on " +
	"highlighting potential bugs, improving readability if it is a problem, making " +
	"code cleaner, and maximising the performance of the programming language. Flag " +
	"any API keys or secrets present in the code in plain text immediately as highest " +
	"risk. Do not comment on breaking functions down into smaller, more manageable " +
	"functions unless it is a huge problem. Also be aware that there will be libraries " +
	"and techniques used which you are not familiar with, so do not comment on those " +
	"unless you are confident that there is a problem. Use markdown formatting for the " +
	"feedback details. Also do not include the filename or risk level in the feedback " +
	"details. Ensure the feedback details are brief, concise, accurate. If there are " +
	"multiple similar issues, only comment on the most critical. Include brief example " +
	"code snippets in the feedback details for your suggested changes when you're " +
	"confident your suggestions are improvements. Use the same programming language " +
	"as the file under review. If there are multiple improvements you suggest in the " +
	"feedback details, use an ordered list to indicate the priority of the changes. " +
	"Each comment should strictly be formatted using this JSON schema " + reviewSchema + ", " +
	"please do not deviate from the JSON schema or your review will fail. If the comment " +
	"refers to multiple lines, use the first line as a point a reference. For any comments " +
	"that are not about a specific line, must use 0 as the line number."

// buildFilePrompt formats the user payload for one changed file. The model is
// told the filename so it can echo it back in each comment's path field.
func buildFilePrompt(filename, patch string) string {
	return fmt.Sprintf("filename: %s ** %s", filename, patch)
}
